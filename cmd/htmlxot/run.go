package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/htmlxot"
	"github.com/npillmayer/htmlxot/xot"
	"github.com/npillmayer/htmlxot/xot/xotdbg"
	"github.com/scott-cotton/cli"
)

func run(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err = cfg.checkOutputFlags(); err != nil {
		return err
	}
	if err = setupTracing(cfg.Trace); err != nil {
		return err
	}
	if len(args) == 0 {
		return convertReader(cfg, cc.Out, cc.In, "stdin")
	}
	for _, file := range args {
		if err := convertFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(cfg *MainConfig, w io.Writer, file string) error {
	if file == "-" {
		return convertReader(cfg, w, os.Stdin, "stdin")
	}
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	return convertReader(cfg, w, f, file)
}

func convertReader(cfg *MainConfig, w io.Writer, r io.Reader, name string) error {
	x := xot.New()
	var doc xot.Node
	var err error
	if cfg.Select != "" {
		var input []byte
		if input, err = io.ReadAll(r); err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		doc, err = htmlxot.ParseHTMLSelection(x, string(input), cfg.Select, cfg.options()...)
	} else {
		doc, err = htmlxot.ParseHTMLReader(x, r, cfg.options()...)
	}
	if err != nil {
		var perr *htmlxot.ParseError
		if errors.As(err, &perr) && len(perr.Diagnostics) > 0 {
			reportDiagnostics(os.Stderr, name, perr)
		}
		return fmt.Errorf("error processing %s: %w", name, err)
	}
	return output(cfg, w, x, doc)
}

func output(cfg *MainConfig, w io.Writer, x *xot.Xot, doc xot.Node) error {
	switch {
	case cfg.Tree:
		_, err := io.WriteString(w, xotdbg.Print(x, doc))
		return err
	case cfg.YAML:
		out, err := xotdbg.YAML(x, doc)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case cfg.Dot:
		return xotdbg.ToGraphViz(x, doc, w)
	}
	if err := x.Serialize(w, doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// reportDiagnostics lists parse errors, coloured if f is a terminal.
func reportDiagnostics(f *os.File, name string, perr *htmlxot.ParseError) {
	pos := fmt.Sprintf
	code := fmt.Sprintf
	if isatty.IsTerminal(f.Fd()) {
		pos = color.New(color.Bold).SprintfFunc()
		code = color.RGB(196, 96, 16).SprintfFunc()
	}
	for _, d := range perr.Diagnostics {
		fmt.Fprintf(f, "%s %s\n", pos("%s:%d:%d:", name, d.Line, d.Column), code("%s", d.Code))
	}
}
