package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/config"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/router"
)

const routeFile = `
base = "body"

[bar]
routes = ["bar/home", "bar/library"]

[nav]
routes = ["nav/details"]
`

func loadSample(t *testing.T) *config.File {
	t.Helper()
	f, err := config.Parse(routeFile)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func TestSimulate(t *testing.T) {
	var out bytes.Buffer
	steps := []string{"go:details", "back", "tab:1", "back"}
	if err := simulate(&out, loadSample(t), steps, false); err != nil {
		t.Fatalf("simulate: %v", err)
	}

	want := [][]string{
		{"start", "active=bar/home", "stack=0", "tab=0"},
		{"go:details", "active=nav/details", "stack=1", "tab=0"},
		{"back", "active=bar/home", "stack=0", "tab=0"},
		{"tab:1", "active=bar/library", "stack=1", "tab=1"},
		{"back", "active=bar/home", "stack=0", "tab=0"},
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("output:\n%s", out.String())
	}
	for i, line := range lines {
		if got := strings.Fields(line); strings.Join(got, " ") != strings.Join(want[i], " ") {
			t.Errorf("line %d = %q, want %q", i, line, strings.Join(want[i], " "))
		}
	}
}

func TestSimulateUnknownRoute(t *testing.T) {
	var out bytes.Buffer
	err := simulate(&out, loadSample(t), []string{"go:librar"}, false)
	if !router.IsUnregistered(err) {
		t.Fatalf("err = %v, want unregistered route", err)
	}

	out.Reset()
	if err := simulate(&out, loadSample(t), []string{"go:librar", "go:library"}, true); err != nil {
		t.Fatalf("keep-going simulate: %v", err)
	}
	if !strings.Contains(out.String(), "error:") || !strings.Contains(out.String(), "active=bar/library") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestParseStep(t *testing.T) {
	batch, err := parseStep("back+tab:2")
	if err != nil || len(batch) != 2 {
		t.Fatalf("parseStep = %#v, %v", batch, err)
	}
	if batch[1] != (router.IndicatorSelectedAction{Index: 2}) {
		t.Fatalf("batch[1] = %#v", batch[1])
	}
	for _, bad := range []string{"jump", "tab:x", "go:"} {
		if _, err := parseStep(bad); err == nil {
			t.Errorf("parseStep(%q) should fail", bad)
		}
	}
}

func TestRunValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.toml")
	if err := os.WriteFile(path, []byte(routeFile), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := runValidate(&out, path); err != nil {
		t.Fatalf("runValidate: %v", err)
	}
	for _, want := range []string{"ok (mode history)", "bar[1]: bar/library", "nav[0]: nav/details"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
