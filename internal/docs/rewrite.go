package docs

import "bytes"

const (
	// legacyLinkPrefix is the flat cross-link form used in hand-authored
	// sources, e.g. "(/patterns-errors)".
	legacyLinkPrefix = "(/patterns-"
	// routedLinkPrefix is the slash-separated form the site routing expects,
	// e.g. "(/patterns/errors)".
	routedLinkPrefix = "(/patterns/"
)

// RewriteLinks replaces every legacy cross-link prefix with the routed form.
// The substitution is a pure string-level operation: no markdown parsing, no
// link validation, and no check that the rewritten target exists. Applying it
// to already-rewritten text is a no-op.
func RewriteLinks(body []byte) []byte {
	return bytes.ReplaceAll(body, []byte(legacyLinkPrefix), []byte(routedLinkPrefix))
}
