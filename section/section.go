package section

import "strings"

// Param is one key=value pair. Key and Value are trimmed views into the
// source buffer of the config that produced them, not copies.
type Param struct {
	Key   string
	Value string
}

// Section is an ordered run of parameters sharing one optional name.
// Params is a contiguous subrange of the owning Table's flat parameter
// array. The implicit section (index 0 in the Table) has an empty Name.
type Section struct {
	Name   string
	Params []Param
}

// Find returns the value of the first parameter whose key matches key
// case-insensitively, in declaration order. Duplicate keys are shadowed by
// the first declaration.
func (s *Section) Find(key string) (string, bool) {
	for i := range s.Params {
		if strings.EqualFold(s.Params[i].Key, key) {
			return s.Params[i].Value, true
		}
	}

	return "", false
}

// Len returns the number of parameters in the section.
func (s *Section) Len() int {
	return len(s.Params)
}

// Table is the index built by a successful load: the ordered section list
// plus the flat parameter array the sections slice into.
//
// Invariants maintained by the linker:
//   - Sections[0] always exists and is the unnamed implicit section.
//   - Every Param belongs to exactly one Section's contiguous range.
//   - The section ranges cover Params completely, in declaration order.
type Table struct {
	Sections []Section
	Params   []Param
}

// NewEmptyTable returns a table with one empty implicit section, the result
// of loading zero-length input.
func NewEmptyTable() *Table {
	return &Table{Sections: make([]Section, 1)}
}

// Lookup resolves a section by name. The empty name selects the implicit
// section, which always exists. Named lookup is case-insensitive and
// returns the first matching section in declaration order.
func (t *Table) Lookup(name string) (*Section, bool) {
	if name == "" {
		return &t.Sections[0], true
	}
	for i := 1; i < len(t.Sections); i++ {
		if strings.EqualFold(t.Sections[i].Name, name) {
			return &t.Sections[i], true
		}
	}

	return nil, false
}

// HasSection reports whether any named (non-implicit) section matches name
// case-insensitively.
func (t *Table) HasSection(name string) bool {
	if name == "" {
		return false
	}
	for i := 1; i < len(t.Sections); i++ {
		if strings.EqualFold(t.Sections[i].Name, name) {
			return true
		}
	}

	return false
}

// Find locates a parameter by section name and key. The empty section name
// searches the implicit section. The second return distinguishes a missing
// section (false) from a missing key within an existing section.
func (t *Table) Find(sectionName, key string) (value string, sectionFound, keyFound bool) {
	sec, ok := t.Lookup(sectionName)
	if !ok {
		return "", false, false
	}

	value, found := sec.Find(key)

	return value, true, found
}
