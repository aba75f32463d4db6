package main

import (
	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

var traceKeys = []string{
	"htmlxot",
	"htmlxot.convert",
	"htmlxot.source",
	"htmlxot.xot",
	"htmlxot.tree",
}

// setupTracing routes all tracers to the Go standard logger, at the given
// level. Without a level, only errors are traced.
//
// Trace keys contain dots, so the configuration uses "/" as its key
// delimiter to keep them flat.
func setupTracing(level string) error {
	if level == "" {
		level = "Error"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(koanf.New("/"), "", nil)
	conf.Set("tracing.adapter", "go")
	conf.Set("tracelevel/root", level)
	for _, key := range traceKeys {
		conf.Set("tracelevel/"+key, level)
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
