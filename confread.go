package confread

import (
	"fmt"
	"sync/atomic"

	"github.com/arloliu/confread/errs"
	"github.com/arloliu/confread/internal/hash"
	"github.com/arloliu/confread/internal/scan"
	"github.com/arloliu/confread/section"
	"github.com/arloliu/confread/source"
)

// Config holds one parsed configuration: the exclusively owned source
// buffer plus the section/parameter table whose entries are views into it.
//
// A Config starts empty. Load populates it atomically: either the load
// succeeds and the table is fully consistent, or it fails and the config is
// left exactly as it was. Loading is gated, not serialized: a load
// attempted while the config holds data (or while another load is in
// flight) fails with errs.ErrAlreadyLoaded.
//
// Read operations are safe to call concurrently against a successfully
// loaded config that is not being cleared or reloaded. Load and Clear must
// not run concurrently with anything else on the same Config.
type Config struct {
	loaded atomic.Bool

	buf         []byte
	table       *section.Table
	fingerprint uint64
}

// New creates an empty Config.
func New() *Config {
	return &Config{}
}

// Load parses data into the config. The bytes are copied once into a
// buffer the config owns; data itself is never modified or retained.
//
// Zero-length input is valid and yields one empty implicit section. On a
// syntax error Load returns a *errs.SyntaxError with the 1-based line
// number and the config stays empty.
func (c *Config) Load(data []byte) error {
	// One spare byte of capacity for the synthetic trailing line feed, so
	// the parser never reallocates the buffer its views point into.
	buf := make([]byte, len(data), len(data)+1)
	copy(buf, data)

	return c.load(buf)
}

// LoadString parses s. See Load.
func (c *Config) LoadString(s string) error {
	buf := make([]byte, len(s), len(s)+1)
	copy(buf, s)

	return c.load(buf)
}

// LoadFrom acquires the source bytes and parses them. Acquisition failures
// wrap errs.ErrReadFailed and are distinct from parse failures.
func (c *Config) LoadFrom(src source.Source) error {
	if c.loaded.Load() {
		return errs.ErrAlreadyLoaded
	}

	data, err := src.Bytes()
	if err != nil {
		return err
	}

	return c.Load(data)
}

// LoadFile reads and parses the configuration file at path, transparently
// decompressing it when the extension calls for it. See the source package
// for the available options.
func (c *Config) LoadFile(path string, opts ...source.Option) error {
	return c.LoadFrom(source.File(path, opts...))
}

// load takes ownership of buf, which must carry the spare byte of capacity
// the parser needs.
func (c *Config) load(buf []byte) error {
	if !c.loaded.CompareAndSwap(false, true) {
		return errs.ErrAlreadyLoaded
	}

	// Fingerprint the source before the parser overwrites token boundaries.
	fp := hash.Sum64(buf)

	table, err := scan.Parse(buf)
	if err != nil {
		c.loaded.Store(false)

		return err
	}

	c.buf = buf
	c.table = table
	c.fingerprint = fp

	return nil
}

// Clear releases the buffer and table and returns the config to its empty
// state, after which it can be loaded again. Value strings previously
// returned by getters must not be retained across Clear.
func (c *Config) Clear() {
	c.buf = nil
	c.table = nil
	c.fingerprint = 0
	c.loaded.Store(false)
}

// Loaded reports whether the config currently holds parsed data.
func (c *Config) Loaded() bool {
	return c.loaded.Load()
}

// Fingerprint returns the xxHash64 of the loaded source bytes, or 0 when
// the config is empty. Two configs loaded from identical text share the
// same fingerprint, which makes reload-if-changed checks cheap.
func (c *Config) Fingerprint() uint64 {
	return c.fingerprint
}

// Sections returns the parsed sections in declaration order, with the
// implicit section at index 0, or nil when the config is empty. The result
// is a read-only view; callers must not modify it.
func (c *Config) Sections() []section.Section {
	if c.table == nil {
		return nil
	}

	return c.table.Sections
}

// Find returns the value of key within the named section, searching the
// implicit section when sectionName is empty. Matching is case-insensitive
// and the first declaration wins.
//
// The error distinguishes a missing section (errs.ErrSectionNotFound) from
// a missing key in an existing section (errs.ErrParamNotFound).
func (c *Config) Find(sectionName, key string) (string, error) {
	t := c.table
	if t == nil {
		return "", errs.ErrParamNotFound
	}

	value, sectionFound, keyFound := t.Find(sectionName, key)
	if !sectionFound {
		return "", fmt.Errorf("%w: [%s]", errs.ErrSectionNotFound, sectionName)
	}
	if !keyFound {
		return "", fmt.Errorf("%w: %q", errs.ErrParamNotFound, key)
	}

	return value, nil
}

// Has reports whether key exists in the named section (or the implicit
// section when sectionName is empty).
func (c *Config) Has(sectionName, key string) bool {
	_, err := c.Find(sectionName, key)

	return err == nil
}

// HasSection reports whether any named section matches name
// case-insensitively. The implicit section is not addressable by name.
func (c *Config) HasSection(name string) bool {
	t := c.table
	if t == nil {
		return false
	}

	return t.HasSection(name)
}
