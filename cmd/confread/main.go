// Command confread loads a configuration file and prints its sections and
// parameters, which makes it handy for checking what a config actually
// parses to (including which duplicate declarations are shadowed).
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	flags "github.com/jessevdk/go-flags"

	"github.com/arloliu/confread"
	"github.com/arloliu/confread/errs"
)

type cliOptions struct {
	Section string `short:"s" long:"section" description:"print only the section with this name (case-insensitive)"`
	Key     string `short:"k" long:"key" description:"print only the value of this key (use with --section for named sections)"`
	NoColor bool   `long:"no-color" description:"disable colored output"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"configuration file (.conf, optionally .gz/.zst/.s2/.lz4)"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts cliOptions

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	if err := run(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "confread: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *cliOptions) error {
	cfg := confread.New()
	if err := cfg.LoadFile(opts.Args.File); err != nil {
		var serr *errs.SyntaxError
		if errors.As(err, &serr) {
			return fmt.Errorf("%s:%d: %s", opts.Args.File, serr.Line, serr.Msg)
		}

		return err
	}

	if opts.Key != "" {
		value, err := cfg.Find(opts.Section, opts.Key)
		if err != nil {
			return err
		}
		fmt.Println(value)

		return nil
	}

	header := color.New(color.FgCyan, color.Bold)
	keyColor := color.New(color.FgGreen)

	for _, sec := range cfg.Sections() {
		if opts.Section != "" && !strings.EqualFold(sec.Name, opts.Section) {
			continue
		}

		if sec.Name == "" {
			if sec.Len() == 0 {
				continue
			}
		} else {
			header.Printf("[%s]\n", sec.Name)
		}

		for _, p := range sec.Params {
			fmt.Printf("%s = %s\n", keyColor.Sprint(p.Key), p.Value)
		}
		fmt.Println()
	}

	return nil
}
