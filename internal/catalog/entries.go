package catalog

// builtinEntries is the authoritative table for the shipped pattern corpus
// under docs/patterns. Keep it in sync with the source directory: adding an
// article without an entry here fails the next sync run.
var builtinEntries = map[string]Entry{
	"composition": {
		Title:       "Composing Behaviour Without Inheritance",
		Description: "Building small, orthogonal units and wiring them through interfaces instead of type hierarchies.",
	},
	"validation": {
		Title:       "Validation at the Boundary",
		Description: "Rejecting malformed input at the edge so core logic only ever sees well-formed values.",
	},
	"errors": {
		Title:       "Typed Errors and Failure Contracts",
		Description: "Modelling failure modes as first-class types callers can branch on without string matching.",
	},
	"workflows": {
		Title:       "Workflow Orchestration and Compensation",
		Description: "Structuring multi-step operations so partial failure leaves the system in a recoverable state.",
	},
	"enforcement": {
		Title:       "Mechanical Enforcement of Conventions",
		Description: "Letting linters and type checkers carry the rules a review comment would otherwise repeat forever.",
	},
}

// Default returns the built-in catalog for the shipped corpus.
func Default() *Catalog {
	return MustNew(builtinEntries)
}
