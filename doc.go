// Package confread reads line-oriented "key=value" configuration text with
// optional named [section] headers and inline comments.
//
// The source is loaded in full, then indexed in a single parse: key and
// value entries in the resulting table are zero-copy views into the one
// buffer the Config owns, so loading never copies per-field. Typed getters
// retrieve parameter values with caller-supplied defaults.
//
// # Format
//
// A configuration file looks like:
//
//	# first comment
//	ParamWithoutSection = yes
//	[SectName]
//	; second comment
//	ParamWithSection = 123456  ; comment after the value
//
// Rules:
//   - A line whose first non-whitespace byte is '#' or ';' is a comment.
//   - [name] opens a new section; parameters before any header belong to
//     the unnamed implicit section.
//   - A parameter is a key followed by '=' (or whitespace) and a value;
//     keys and values are trimmed of surrounding whitespace.
//   - A comment after a value must be separated from it by at least one
//     whitespace character; "x=1#no" keeps "1#no" as the literal value,
//     while "x=1 #yes" stores "1".
//   - Blank lines are ignored. Line endings are LF or CRLF; a lone CR is a
//     syntax error. A missing terminator on the last line is tolerated.
//   - A parameter with no value ("x=") is a syntax error.
//
// Section names and keys are matched case-insensitively. Neither needs to
// be unique; the first declaration wins and later duplicates are shadowed.
//
// # Usage
//
//	cfg := confread.New()
//	if err := cfg.LoadFile("app.conf"); err != nil {
//	    var serr *errs.SyntaxError
//	    if errors.As(err, &serr) {
//	        log.Fatalf("app.conf:%d: %s", serr.Line, serr.Msg)
//	    }
//	    log.Fatal(err)
//	}
//
//	host, _ := cfg.GetString("db", "host", "localhost")
//	port, _ := cfg.GetInt("db", "port", 5432)
//	debug, _ := cfg.GetBool("", "debug", false)
//
// Getters always return a usable value: the found value on success, the
// caller's default otherwise. The returned error is the out-of-band status
// (errs.ErrParamNotFound, errs.ErrInvalidValue, ...) and can be ignored
// when the default is an acceptable fallback.
//
// A Config must be cleared before it can be loaded again; a load attempted
// while data is held fails with errs.ErrAlreadyLoaded. Value strings
// returned by getters alias the config's buffer and must not be retained
// across Clear or a reload.
package confread
