//go:build gozstd

package source

import (
	"github.com/valyala/gozstd"
)

// Decompress decompresses the input data as a Zstandard frame.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
