package source

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/confread/errs"
	"github.com/arloliu/confread/internal/options"
)

// Source yields one configuration document as a contiguous byte sequence.
// Acquisition failures wrap errs.ErrReadFailed.
type Source interface {
	Bytes() ([]byte, error)
}

// Option configures a FileSource.
type Option = options.Option[*FileSource]

// WithCodec overrides the codec picked from the file extension.
func WithCodec(codec Codec) Option {
	return options.New(func(s *FileSource) error {
		if codec == nil {
			return fmt.Errorf("codec must not be nil")
		}
		s.codec = codec

		return nil
	})
}

// WithMaxSize rejects source files larger than maxBytes (measured before
// decompression). Zero or negative values are invalid.
func WithMaxSize(maxBytes int64) Option {
	return options.New(func(s *FileSource) error {
		if maxBytes <= 0 {
			return fmt.Errorf("max size must be positive, got %d", maxBytes)
		}
		s.maxSize = maxBytes

		return nil
	})
}

// FileSource reads a configuration file from disk, decompressing it when
// the extension (or an explicit WithCodec) calls for it.
type FileSource struct {
	path    string
	codec   Codec
	maxSize int64
	optErr  error
}

var _ Source = (*FileSource)(nil)

// File creates a FileSource for path. Invalid options surface from Bytes,
// wrapped in errs.ErrReadFailed, so call sites can stay single-expression.
func File(path string, opts ...Option) *FileSource {
	s := &FileSource{path: path}
	s.optErr = options.Apply(s, opts...)

	return s
}

// Bytes reads and, if needed, decompresses the file.
func (s *FileSource) Bytes() ([]byte, error) {
	if s.optErr != nil {
		return nil, fmt.Errorf("%w: %s: %s", errs.ErrReadFailed, s.path, s.optErr)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrReadFailed, err)
	}

	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: %s: size %d exceeds limit %d", errs.ErrReadFailed, s.path, len(data), s.maxSize)
	}

	codec := s.codec
	if codec == nil {
		codec = DetectCodec(s.path)
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", errs.ErrReadFailed, s.path, err)
	}

	return out, nil
}

// ReaderSource drains an io.Reader.
type ReaderSource struct {
	r io.Reader
}

var _ Source = (*ReaderSource)(nil)

// Reader creates a Source that reads the whole of r.
func Reader(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// Bytes reads r to EOF.
func (s *ReaderSource) Bytes() ([]byte, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrReadFailed, err)
	}

	return data, nil
}

// RawSource serves an in-memory byte sequence.
type RawSource struct {
	data []byte
}

var _ Source = (*RawSource)(nil)

// Raw creates a Source around data. The slice is not copied; the config's
// load path makes its own copy before parsing.
func Raw(data []byte) *RawSource {
	return &RawSource{data: data}
}

// Bytes returns the wrapped slice.
func (s *RawSource) Bytes() ([]byte, error) {
	return s.data, nil
}
