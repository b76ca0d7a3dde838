// Command fluentrx prints regular-expression patterns assembled with the
// fluentrx builder.
//
//	fluentrx escape [-i] [-anchor] [-boundary] [-check] TEXT...
//	fluentrx keywords [-i] [-anchor] [-boundary] [-check] WORD...
//
// escape joins its arguments with a space and matches the result
// literally. keywords matches any one of its arguments literally, ordered
// so that no word is hidden by a shorter prefix.
//
// Every flag can also be set through the environment with the FLUENTRX_
// prefix, e.g. FLUENTRX_CHECK=true.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	sglog "github.com/sourcegraph/log"

	"github.com/coregx/fluentrx"
)

const envPrefix = "FLUENTRX"

// shape holds the wrapping applied around the generated atom.
type shape struct {
	ignoreCase bool
	anchor     bool
	boundary   bool
	check      bool
}

func (s *shape) register(fs *flag.FlagSet) {
	fs.BoolVar(&s.ignoreCase, "i", false, "match case-insensitively (scoped inline option)")
	fs.BoolVar(&s.anchor, "anchor", false, "anchor the pattern with ^ and $")
	fs.BoolVar(&s.boundary, "boundary", false, "require word boundaries around the pattern")
	fs.BoolVar(&s.check, "check", false, "fail unless the pattern compiles with RE2")
}

// render wraps atom according to s and returns the final pattern text.
func (s *shape) render(atom fluentrx.Expression) string {
	var expr fluentrx.Expression = atom
	if s.boundary {
		expr = fluentrx.New().Anchors().Boundary(expr)
	}
	if s.ignoreCase {
		b := fluentrx.New()
		b.Options().CaseInsensitive().Finish(expr)
		expr = b
	}

	out := fluentrx.New()
	if s.anchor {
		out.Anchors().LineBegin()
	}
	out.Raw(expr.Build())
	if s.anchor {
		out.Anchors().LineEnd()
	}
	return out.Build()
}

type app struct {
	out    io.Writer
	logger sglog.Logger
}

// emit prints pattern, compiling it first when check is set.
func (a *app) emit(pattern string, check bool) error {
	if check {
		if _, err := fluentrx.New().Raw(pattern).Compile(); err != nil {
			a.logger.Warn("pattern rejected by RE2",
				sglog.String("pattern", pattern),
				sglog.Error(err))
			return fmt.Errorf("check %q: %w", pattern, err)
		}
	}
	_, err := fmt.Fprintln(a.out, pattern)
	return err
}

func (a *app) escapeCommand() *ffcli.Command {
	var s shape
	fs := flag.NewFlagSet("fluentrx escape", flag.ContinueOnError)
	s.register(fs)

	return &ffcli.Command{
		Name:       "escape",
		ShortUsage: "fluentrx escape [flags] TEXT...",
		ShortHelp:  "match text literally",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix(envPrefix)},
		Exec: func(_ context.Context, args []string) error {
			if len(args) == 0 {
				return errors.New("escape: no text given")
			}
			atom := fluentrx.New()
			atom.Text(strings.Join(args, " "))
			return a.emit(s.render(atom), s.check)
		},
	}
}

func (a *app) keywordsCommand() *ffcli.Command {
	var s shape
	fs := flag.NewFlagSet("fluentrx keywords", flag.ContinueOnError)
	s.register(fs)

	return &ffcli.Command{
		Name:       "keywords",
		ShortUsage: "fluentrx keywords [flags] WORD...",
		ShortHelp:  "match any one of the words literally",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix(envPrefix)},
		Exec: func(_ context.Context, args []string) error {
			if len(args) == 0 {
				return errors.New("keywords: no words given")
			}
			atom := fluentrx.New()
			atom.Keywords(args...)
			a.logger.Debug("keywords ordered",
				sglog.Int("words", len(args)),
				sglog.String("pattern", atom.Build()))
			return a.emit(s.render(atom), s.check)
		},
	}
}

func newRootCommand(out io.Writer, logger sglog.Logger) *ffcli.Command {
	a := &app{out: out, logger: logger}
	fs := flag.NewFlagSet("fluentrx", flag.ContinueOnError)

	return &ffcli.Command{
		Name:        "fluentrx",
		ShortUsage:  "fluentrx <subcommand> [flags] ARGS...",
		FlagSet:     fs,
		Subcommands: []*ffcli.Command{a.escapeCommand(), a.keywordsCommand()},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}
}

func main() {
	liblog := sglog.Init(sglog.Resource{
		Name:       "fluentrx",
		InstanceID: os.Getenv("HOSTNAME"),
	})
	defer liblog.Sync()

	logger := sglog.Scoped("fluentrx", "pattern builder command line")
	root := newRootCommand(os.Stdout, logger)

	if err := root.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Error("command failed", sglog.Error(err))
		liblog.Sync()
		os.Exit(1)
	}
}
