package source

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec decompresses gzip payloads (.gz files).
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

// Decompress decompresses the input data as a gzip stream.
func (GzipCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}

	return out, nil
}
