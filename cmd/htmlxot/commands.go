package main

import (
	"fmt"

	"github.com/npillmayer/htmlxot"
	"github.com/scott-cotton/cli"
)

// MainConfig holds the command line settings.
type MainConfig struct {
	Fragment bool   `cli:"name=fragment desc='parse input as content of an element'"`
	Context  string `cli:"name=context desc='context element for -fragment (default body)'"`
	Lenient  bool   `cli:"name=lenient desc='convert despite parse errors'"`
	Select   string `cli:"name=select desc='convert the first element matching a CSS selector'"`

	Tree bool `cli:"name=tree desc='print a tree listing instead of XML'"`
	YAML bool `cli:"name=yaml desc='print YAML instead of XML'"`
	Dot  bool `cli:"name=dot desc='print a GraphViz diagram instead of XML'"`

	Trace string `cli:"name=trace desc='trace level (Error, Info, Debug)'"`

	Main *cli.Command
}

func (cfg *MainConfig) options() []htmlxot.Option {
	var opts []htmlxot.Option
	if cfg.Fragment {
		opts = append(opts, htmlxot.WithMode(htmlxot.ModeFragment),
			htmlxot.WithFragmentContext(cfg.Context))
	}
	if cfg.Lenient {
		opts = append(opts, htmlxot.WithDiagnostics(htmlxot.DiagnosticsIgnore))
	}
	return opts
}

func (cfg *MainConfig) checkOutputFlags() error {
	n := 0
	for _, v := range []bool{cfg.Tree, cfg.YAML, cfg.Dot} {
		if v {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("%w: must specify at most one of -tree -yaml -dot", cli.ErrUsage)
	}
	return nil
}

// MainCommand creates the htmlxot command.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "htmlxot").
		WithSynopsis("htmlxot [opts] [files]").
		WithDescription("htmlxot converts HTML into a namespace-aware document tree.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}
