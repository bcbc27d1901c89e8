package source

import (
	"path/filepath"
	"strings"
)

// Codec decompresses an acquired configuration payload before parsing.
//
// Implementations must treat the input as immutable and return a newly
// allocated slice (or the input itself for the no-op codec).
type Codec interface {
	Decompress(data []byte) ([]byte, error)
}

// DetectCodec picks a codec from the file extension. Unknown extensions map
// to the no-op codec, which passes the payload through unchanged.
func DetectCodec(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return GzipCodec{}
	case ".zst":
		return ZstdCodec{}
	case ".s2":
		return S2Codec{}
	case ".lz4":
		return LZ4Codec{}
	default:
		return NoOpCodec{}
	}
}

// NoOpCodec passes data through without decompression, for plain-text
// configuration files.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// Decompress returns the input slice as-is.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
