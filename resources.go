package tlasitter

import (
	"embed"
	"io/fs"
)

// Static grammar artifacts, embedded at build time and served unmodified.
// Their contents are opaque here; interpreting the schema and queries is the
// consumer's job.

//go:embed src/node-types.json
var nodeTypes string

//go:embed queries/highlights.scm
var highlightsQuery string

//go:embed queries/locals.scm
var localsQuery string

//go:embed grammar.toml src queries
var bundle embed.FS

// NodeTypes returns the node-type schema describing every syntax-tree node
// kind the TLA+ grammar can produce.
func NodeTypes() string { return nodeTypes }

// HighlightsQuery returns the syntax-highlighting query source.
func HighlightsQuery() string { return highlightsQuery }

// LocalsQuery returns the local-binding and scoping query source.
func LocalsQuery() string { return localsQuery }

// Bundle returns the embedded artifact bundle, including grammar.toml, for
// manifest verification.
func Bundle() fs.FS { return bundle }
