// Package scan implements the parsing core: the line scanner that splits the
// source buffer into NUL-terminated lines, the classifier that pre-counts
// sections and parameters so storage can be sized exactly, and the linker
// that builds the section/parameter table with zero-copy views into the
// buffer.
//
// The caller hands Parse a buffer it owns exclusively; the passes mutate it
// in place (line terminators and token boundaries are overwritten with NUL)
// and every key, value, and section name in the resulting table aliases it.
package scan

import (
	"github.com/arloliu/confread/errs"
	"github.com/arloliu/confread/internal/pool"
	"github.com/arloliu/confread/section"
)

const (
	space = ' '
	tab   = '\t'
	cr    = '\r'
	lf    = '\n'
	term  = 0x00
)

// counts holds the exact storage sizes computed by the classifier pass.
// Sections counts [name] headers only; the implicit section is not included.
type counts struct {
	sections int
	params   int
}

// Parse runs all three passes over buf and returns the populated table.
//
// Parse takes ownership of buf and mutates it in place. buf must have at
// least one spare byte of capacity so the synthetic trailing line feed can
// be appended without reallocating (reallocation would detach the table's
// string views from the caller's buffer).
//
// A zero-length buffer is not an error: it yields a table with one empty
// implicit section. On a syntax error Parse returns a *errs.SyntaxError
// carrying the 1-based line number and no table.
func Parse(buf []byte) (*section.Table, error) {
	if len(buf) == 0 {
		return section.NewEmptyTable(), nil
	}

	if buf[len(buf)-1] != lf {
		buf = append(buf, lf)
	}

	offsets, release := pool.GetIntSlice(countLineFeeds(buf))
	defer release()

	offsets, err := scanLines(buf, offsets[:0])
	if err != nil {
		return nil, err
	}

	return link(buf, offsets, classify(buf, offsets))
}

// countLineFeeds sizes the line-offset table: after the synthetic line feed
// is in place, every line ends in exactly one LF.
func countLineFeeds(buf []byte) int {
	n := 0
	for _, b := range buf {
		if b == lf {
			n++
		}
	}

	return n
}

// scanLines records the effective start offset of every line, skipping
// leading spaces and tabs, and overwrites each CR/LF terminator with NUL so
// lines become independently addressable regions of buf.
//
// A carriage return not immediately followed by a line feed is a syntax
// error at the line it occurs on.
func scanLines(buf []byte, offsets []int) ([]int, error) {
	i := 0
	for i < len(buf) {
		for buf[i] == space || buf[i] == tab {
			i++
		}
		offsets = append(offsets, i)

		for {
			switch buf[i] {
			case cr:
				buf[i] = term
				i++
				if i == len(buf) || buf[i] != lf {
					return nil, errs.NewSyntaxError(len(offsets), "carriage return not followed by line feed")
				}
				buf[i] = term
				i++
			case lf:
				buf[i] = term
				i++
			default:
				i++
				continue
			}

			break
		}
	}

	return offsets, nil
}

// classify inspects the first byte of each scanned line and counts section
// headers and parameter lines. The counts are used to allocate the section
// and parameter storage exactly; the linker never grows either, which is
// what keeps the table's subrange views stable.
func classify(buf []byte, offsets []int) counts {
	var c counts
	for _, off := range offsets {
		switch buf[off] {
		case '#', ';', term:
			// comment or blank
		case '[':
			c.sections++
		default:
			c.params++
		}
	}

	return c
}
