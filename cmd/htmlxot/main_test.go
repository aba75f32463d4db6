package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/htmlxot"
	"github.com/scott-cotton/cli"
)

func TestConvertToXML(t *testing.T) {
	cfg := &MainConfig{Fragment: true}
	var out bytes.Buffer
	err := convertReader(cfg, &out, strings.NewReader("<p>a<br>b</p>"), "test")
	if err != nil {
		t.Fatal(err)
	}
	expected := `<p xmlns="http://www.w3.org/1999/xhtml">a<br/>b</p>` + "\n"
	if out.String() != expected {
		t.Errorf("expected %q, have %q", expected, out.String())
	}
}

func TestConvertSelectionToTree(t *testing.T) {
	cfg := &MainConfig{Select: "ul", Tree: true}
	var out bytes.Buffer
	err := convertReader(cfg, &out, strings.NewReader("<div><ul><li>x</li></ul></div>"), "test")
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", out.String())
	if !strings.Contains(out.String(), "html:ul") || !strings.Contains(out.String(), `"x"`) {
		t.Errorf("unexpected tree listing:\n%s", out.String())
	}
}

func TestParseErrorsAreReported(t *testing.T) {
	cfg := &MainConfig{}
	var out bytes.Buffer
	err := convertReader(cfg, &out, strings.NewReader("<p a a>x</p>"), "test")
	if !errors.Is(err, htmlxot.ErrDiagnostics) {
		t.Fatalf("expected parse errors, have %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, have %q", out.String())
	}
	cfg.Lenient = true
	if err := convertReader(cfg, &out, strings.NewReader("<p a a>x</p>"), "test"); err != nil {
		t.Errorf("expected -lenient to convert, have %v", err)
	}
}

func TestOutputFlagsExclusive(t *testing.T) {
	cfg := &MainConfig{Tree: true, Dot: true}
	if err := cfg.checkOutputFlags(); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected usage error, have %v", err)
	}
	cfg = &MainConfig{YAML: true}
	if err := cfg.checkOutputFlags(); err != nil {
		t.Errorf("expected a single output flag to be accepted, have %v", err)
	}
}
