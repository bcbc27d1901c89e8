package source

// ZstdCodec decompresses Zstandard payloads (.zst files).
//
// Two implementations are available, selected at build time the same way
// for both: the pure-Go klauspost/compress decoder by default, or the cgo
// valyala/gozstd decoder when building with the gozstd tag.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)
