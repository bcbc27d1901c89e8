// Package source acquires configuration text for parsing.
//
// The parser core only needs a contiguous byte sequence with a known
// length; this package supplies it. A Source yields the raw bytes of one
// configuration document, and every acquisition failure wraps
// errs.ErrReadFailed so callers can distinguish "could not read the source"
// from "the source is malformed" (errs.ErrSyntax).
//
// Files may be stored compressed. A Codec decompresses the acquired payload
// before it reaches the parser; File picks one automatically from the file
// extension (.gz, .zst, .s2, .lz4) unless overridden with WithCodec:
//
//	cfg := confread.New()
//	err := cfg.LoadFrom(source.File("app.conf.zst"))
//
// Zstandard uses the pure-Go implementation by default; build with the
// gozstd tag to use the cgo implementation instead.
package source
