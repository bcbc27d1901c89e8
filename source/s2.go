package source

import "github.com/klauspost/compress/s2"

// S2Codec decompresses S2 payloads (.s2 files).
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// Decompress decompresses the input data as an S2 block.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
