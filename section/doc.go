// Package section defines the in-memory index a parsed configuration is made
// of: the flat parameter array, the ordered section list that slices into it,
// and the case-insensitive lookup operations over both.
//
// # Structure
//
// A parsed configuration is a Table:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Params (flat, declaration order)                    │
//	│  [p0] [p1] [p2] [p3] [p4] [p5]                      │
//	├─────────────────────────────────────────────────────┤
//	│ Sections                                            │
//	│  [0] ""      → Params[0:2]   (implicit section)     │
//	│  [1] "db"    → Params[2:5]                          │
//	│  [2] "cache" → Params[5:6]                          │
//	└─────────────────────────────────────────────────────┘
//
// Section 0 always exists and holds the parameters declared before any
// [name] header; it has no name. Every other section owns one contiguous
// subrange of Params, and the subranges cover Params exactly, in order.
//
// Param keys and values are views into the source buffer owned by the
// confread.Config that produced the Table. They stay valid until that config
// is cleared or reloaded.
//
// # Lookup semantics
//
// Section names and parameter keys are compared case-insensitively. Neither
// is required to be unique; the first match in declaration order wins, so
// duplicates are shadowed rather than rejected.
package section
