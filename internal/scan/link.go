package scan

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/confread/errs"
	"github.com/arloliu/confread/section"
)

// link is the second pass over the scanned lines. It splits parameter lines
// into trimmed key/value views, captures section names, and groups
// parameters under the most recently opened section.
//
// Storage is allocated once from the classifier counts and never grows, so
// the subrange views handed to each section stay valid for the lifetime of
// the table.
func link(buf []byte, offsets []int, c counts) (*section.Table, error) {
	params := make([]section.Param, 0, c.params)
	sections := make([]section.Section, 1, c.sections+1)

	// Start index of the current section's parameter range in params.
	rangeStart := 0

	closeSection := func() {
		cur := &sections[len(sections)-1]
		cur.Params = params[rangeStart:len(params):len(params)]
		rangeStart = len(params)
	}

	for li, off := range offsets {
		line := li + 1

		switch buf[off] {
		case '#', ';', term:
			// comment or blank

		case '[':
			name, err := linkSection(buf, off, line)
			if err != nil {
				return nil, err
			}
			closeSection()
			sections = append(sections, section.Section{Name: name})

		default:
			p, err := linkParam(buf, off, line)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
	}
	closeSection()

	return &section.Table{Sections: sections, Params: params}, nil
}

// linkSection validates a section header line and returns the name between
// the brackets. After the closing bracket only whitespace and an optional
// comment may appear before the end of the line.
func linkSection(buf []byte, off, line int) (string, error) {
	i := off + 1
	nameStart := i

	for buf[i] != ']' {
		if buf[i] == term {
			return "", errs.NewSyntaxError(line, "section header missing closing bracket")
		}
		i++
	}
	nameEnd := i
	buf[i] = term
	i++

	for buf[i] == space || buf[i] == tab {
		i++
	}
	if buf[i] != term && buf[i] != '#' && buf[i] != ';' {
		return "", errs.NewSyntaxError(line, "unexpected content after section header")
	}

	return bufString(buf, nameStart, nameEnd), nil
}

// linkParam splits one parameter line into its trimmed key and value views.
//
// The key runs from the line start to the first '=', space, or tab. The
// value starts after the whitespace/'=' run that follows and extends to the
// end of the line or to a comment marker preceded by whitespace. A '#' or
// ';' adjacent to value content with no separating whitespace is literal
// value data, not a comment.
func linkParam(buf []byte, off, line int) (section.Param, error) {
	i := off
	keyStart := i

	for buf[i] != '=' && buf[i] != space && buf[i] != tab {
		if buf[i] == term {
			return section.Param{}, errs.NewSyntaxError(line, fmt.Sprintf("parameter %q has no value", bufString(buf, keyStart, i)))
		}
		i++
	}
	keyEnd := i
	buf[i] = term
	i++

	for buf[i] == '=' || buf[i] == space || buf[i] == tab {
		i++
	}
	if buf[i] == term || buf[i] == '#' || buf[i] == ';' {
		return section.Param{}, errs.NewSyntaxError(line, fmt.Sprintf("parameter %q has no value", bufString(buf, keyStart, keyEnd)))
	}

	valStart := i
	for buf[i] != term {
		if (buf[i] == '#' || buf[i] == ';') && (buf[i-1] == space || buf[i-1] == tab) {
			break
		}
		i++
	}

	// Trim trailing whitespace and terminate the value in place.
	valEnd := i
	for buf[valEnd-1] == space || buf[valEnd-1] == tab {
		valEnd--
	}
	buf[valEnd] = term

	return section.Param{
		Key:   bufString(buf, keyStart, keyEnd),
		Value: bufString(buf, valStart, valEnd),
	}, nil
}

// bufString returns a zero-copy string view over buf[start:end]. The view
// aliases buf; it stays valid only while the owning config holds the buffer.
func bufString(buf []byte, start, end int) string {
	if start == end {
		return ""
	}

	return unsafe.String(&buf[start], end-start)
}
