package scan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/confread/errs"
	"github.com/arloliu/confread/section"
)

// parseText copies src into a buffer with the spare capacity Parse requires,
// the same way confread.Config.Load prepares its owned buffer.
func parseText(t *testing.T, src string) (*section.Table, error) {
	t.Helper()

	buf := make([]byte, len(src), len(src)+1)
	copy(buf, src)

	return Parse(buf)
}

func TestParse_EmptyInput(t *testing.T) {
	tbl, err := parseText(t, "")

	require.NoError(t, err)
	require.Len(t, tbl.Sections, 1)
	require.Empty(t, tbl.Sections[0].Name)
	require.Empty(t, tbl.Params)
}

func TestParse_ImplicitSectionOnly(t *testing.T) {
	tbl, err := parseText(t, "host = localhost\nport=8080\n")

	require.NoError(t, err)
	require.Len(t, tbl.Sections, 1)
	require.Equal(t, 2, tbl.Sections[0].Len())
	require.Equal(t, "host", tbl.Params[0].Key)
	require.Equal(t, "localhost", tbl.Params[0].Value)
	require.Equal(t, "port", tbl.Params[1].Key)
	require.Equal(t, "8080", tbl.Params[1].Value)
}

func TestParse_Sections(t *testing.T) {
	src := "global = 1\n[db]\nhost=db1\nport = 5432\n[cache]\nttl=60\n"
	tbl, err := parseText(t, src)

	require.NoError(t, err)
	require.Len(t, tbl.Sections, 3)
	require.Equal(t, "", tbl.Sections[0].Name)
	require.Equal(t, "db", tbl.Sections[1].Name)
	require.Equal(t, "cache", tbl.Sections[2].Name)

	require.Equal(t, 1, tbl.Sections[0].Len())
	require.Equal(t, 2, tbl.Sections[1].Len())
	require.Equal(t, 1, tbl.Sections[2].Len())

	// Section ranges are contiguous views into the flat parameter array,
	// in declaration order.
	require.Len(t, tbl.Params, 4)
	require.Equal(t, tbl.Params[0:1], tbl.Sections[0].Params)
	require.Equal(t, tbl.Params[1:3], tbl.Sections[1].Params)
	require.Equal(t, tbl.Params[3:4], tbl.Sections[2].Params)
}

func TestParse_LeadingWhitespaceIgnored(t *testing.T) {
	tbl, err := parseText(t, "   key = value\n\t[sect]\n\t  k2=v2\n")

	require.NoError(t, err)
	require.Len(t, tbl.Sections, 2)
	require.Equal(t, "sect", tbl.Sections[1].Name)
	require.Equal(t, "key", tbl.Params[0].Key)
	require.Equal(t, "k2", tbl.Params[1].Key)
}

func TestParse_CommentsAndBlankLines(t *testing.T) {
	src := "# leading comment\n\n; other comment style\nkey=value\n   # indented comment\n\n"
	tbl, err := parseText(t, src)

	require.NoError(t, err)
	require.Len(t, tbl.Params, 1)
	require.Equal(t, "key", tbl.Params[0].Key)
}

func TestParse_InlineComments(t *testing.T) {
	t.Run("comment after value needs separating whitespace", func(t *testing.T) {
		tbl, err := parseText(t, "x=1 #comment\ny=2\t; comment\n")

		require.NoError(t, err)
		require.Equal(t, "1", tbl.Params[0].Value)
		require.Equal(t, "2", tbl.Params[1].Value)
	})

	t.Run("adjacent marker is literal value content", func(t *testing.T) {
		tbl, err := parseText(t, "x=1#notacomment\ny=a;b ;tail\n")

		require.NoError(t, err)
		require.Equal(t, "1#notacomment", tbl.Params[0].Value)
		require.Equal(t, "a;b", tbl.Params[1].Value)
	})

	t.Run("comment after section header", func(t *testing.T) {
		tbl, err := parseText(t, "[db] # primary\nk=v\n")

		require.NoError(t, err)
		require.Equal(t, "db", tbl.Sections[1].Name)
	})
}

func TestParse_ValueTrimming(t *testing.T) {
	tbl, err := parseText(t, "a =  spaced value  \nb\t=\ttabbed\t\n")

	require.NoError(t, err)
	require.Equal(t, "spaced value", tbl.Params[0].Value)
	require.Equal(t, "tabbed", tbl.Params[1].Value)
}

func TestParse_KeyValueForms(t *testing.T) {
	t.Run("repeated equals and whitespace before value", func(t *testing.T) {
		tbl, err := parseText(t, "k == = v\n")

		require.NoError(t, err)
		require.Equal(t, "k", tbl.Params[0].Key)
		require.Equal(t, "v", tbl.Params[0].Value)
	})

	t.Run("whitespace delimited without equals", func(t *testing.T) {
		tbl, err := parseText(t, "key value\n")

		require.NoError(t, err)
		require.Equal(t, "key", tbl.Params[0].Key)
		require.Equal(t, "value", tbl.Params[0].Value)
	})

	t.Run("value may contain equals", func(t *testing.T) {
		tbl, err := parseText(t, "dsn = user=app dbname=main\n")

		require.NoError(t, err)
		require.Equal(t, "user=app dbname=main", tbl.Params[0].Value)
	})
}

func TestParse_LineEndings(t *testing.T) {
	t.Run("crlf", func(t *testing.T) {
		tbl, err := parseText(t, "a=1\r\n[s]\r\nb=2\r\n")

		require.NoError(t, err)
		require.Equal(t, "1", tbl.Params[0].Value)
		require.Equal(t, "s", tbl.Sections[1].Name)
		require.Equal(t, "2", tbl.Params[1].Value)
	})

	t.Run("missing final terminator tolerated", func(t *testing.T) {
		tbl, err := parseText(t, "a=1\nb=2")

		require.NoError(t, err)
		require.Len(t, tbl.Params, 2)
		require.Equal(t, "2", tbl.Params[1].Value)
	})

	t.Run("lone carriage return is a syntax error", func(t *testing.T) {
		_, err := parseText(t, "a=1\nb=2\rc=3\n")

		require.ErrorIs(t, err, errs.ErrSyntax)
		requireSyntaxLine(t, err, 2)
	})
}

func TestParse_SyntaxErrors(t *testing.T) {
	t.Run("section header missing closing bracket", func(t *testing.T) {
		_, err := parseText(t, "ok=1\n[abc\n")

		require.ErrorIs(t, err, errs.ErrSyntax)
		requireSyntaxLine(t, err, 2)
	})

	t.Run("trailing content after section header", func(t *testing.T) {
		_, err := parseText(t, "[abc] junk\n")

		require.ErrorIs(t, err, errs.ErrSyntax)
		requireSyntaxLine(t, err, 1)
	})

	t.Run("parameter without delimiter", func(t *testing.T) {
		_, err := parseText(t, "justakey\n")

		require.ErrorIs(t, err, errs.ErrSyntax)
		requireSyntaxLine(t, err, 1)
	})

	t.Run("parameter without value", func(t *testing.T) {
		_, err := parseText(t, "a=1\nb=\n")

		require.ErrorIs(t, err, errs.ErrSyntax)
		requireSyntaxLine(t, err, 2)
	})

	t.Run("parameter with only comment after equals", func(t *testing.T) {
		_, err := parseText(t, "a = # what\n")

		require.ErrorIs(t, err, errs.ErrSyntax)
		requireSyntaxLine(t, err, 1)
	})

	t.Run("error line numbers count comments and blanks", func(t *testing.T) {
		_, err := parseText(t, "# comment\n\nok = 1\n[broken\n")

		require.ErrorIs(t, err, errs.ErrSyntax)
		requireSyntaxLine(t, err, 4)
	})
}

func TestParse_DuplicatesShadowed(t *testing.T) {
	src := "k=first\nk=second\n[s]\nk=third\n[s]\nk=fourth\n"
	tbl, err := parseText(t, src)

	require.NoError(t, err)

	// First declaration wins on lookup; duplicates stay in storage.
	v, ok := tbl.Sections[0].Find("k")
	require.True(t, ok)
	require.Equal(t, "first", v)

	sec, ok := tbl.Lookup("s")
	require.True(t, ok)
	sv, ok := sec.Find("k")
	require.True(t, ok)
	require.Equal(t, "third", sv)
	require.Len(t, tbl.Params, 4)
}

func TestParse_Idempotent(t *testing.T) {
	src := "a=1\n[db]\nhost = h1 # main\nport=5432\n"

	first, err := parseText(t, src)
	require.NoError(t, err)
	second, err := parseText(t, src)
	require.NoError(t, err)

	require.Equal(t, first.Params, second.Params)
	require.Len(t, second.Sections, len(first.Sections))
	for i := range first.Sections {
		require.Equal(t, first.Sections[i].Name, second.Sections[i].Name)
		require.Equal(t, first.Sections[i].Params, second.Sections[i].Params)
	}
}

func requireSyntaxLine(t *testing.T, err error, line int) {
	t.Helper()

	var serr *errs.SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, line, serr.Line)
}
