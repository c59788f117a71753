// Package docs implements the documentation sync pipeline: discovering source
// articles, resolving their topic slugs, attaching catalog metadata, rewriting
// legacy link prefixes, and publishing the result into the site content
// directory. The pass is sequential and fail-fast; a single missing catalog
// entry aborts the whole run.
package docs
