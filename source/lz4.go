package source

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec decompresses LZ4 frame payloads (.lz4 files).
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// Decompress decompresses the input data as an LZ4 frame.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}

	return out, nil
}
