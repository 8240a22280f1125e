package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/router"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/tree"
)

const sample = `
base = "body"
mode = "switch"
default = "bar/library"

[bar]
routes = ["bar/home", "bar/library", "bar/settings"]

[nav]
routes = ["nav/game"]

[[tabs]]
route = "bar/home"
label = "tab.home"

[[tabs]]
route = "bar/library"
label = "Library"
icon = "icons/library.svg"
`

func TestParseSample(t *testing.T) {
	f, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mode, err := f.NavMode()
	if err != nil || mode != router.ModeSwitch {
		t.Fatalf("NavMode = %v, %v", mode, err)
	}
	if len(f.BarPaths()) != 3 || len(f.NavPaths()) != 1 {
		t.Fatalf("routes = %v / %v", f.BarPaths(), f.NavPaths())
	}
	if len(f.Tabs) != 2 || f.Tabs[1].Icon != "icons/library.svg" {
		t.Fatalf("tabs = %+v", f.Tabs)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !f.BasePath().Equal(router.NewPath("body")) {
		t.Fatalf("base = %q", f.BasePath())
	}
}

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", "colour = 1\n[bar]\nroutes = [\"a\"]", "unknown keys colour"},
		{"bad mode", "mode = \"stack\"\n[bar]\nroutes = [\"a\"]", "mode"},
		{"no routes", "base = \"x\"", "no routes"},
		{"both discover and routes", "[bar]\ndiscover = \"bar\"\nroutes = [\"bar/a\"]", "both discover"},
		{"empty route", "[bar]\nroutes = [\"//\"]", "empty route"},
		{"unknown default", "default = \"bar/hom\"\n[bar]\nroutes = [\"bar/home\"]", "did you mean bar/home"},
		{"route in both lists", "[bar]\nroutes = [\"home\"]\n[nav]\nroutes = [\"home\"]", "registered more than once"},
		{"shadowed route", "[bar]\nroutes = [\"bar/settings\"]\n[nav]\nroutes = [\"settings\"]", "overlaps"},
		{"shadowed in discovered file", "[bar]\ndiscover = \"bar\"\n[nav]\nroutes = [\"nav\", \"nav/game\"]", "overlaps"},
		{"tab on nav route", "[nav]\nroutes = [\"nav/game\"]\n[[tabs]]\nroute = \"nav/game\"", "points at a nav route"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.data)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestApplyDesignatesDefault(t *testing.T) {
	f, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	arena, err := f.Arena()
	if err != nil {
		t.Fatalf("Arena: %v", err)
	}

	r := router.New(arena)
	if err := f.Apply(r, nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	active, ok := r.Active()
	if !ok || !active.Equal(router.ParsePath("bar/library")) {
		t.Fatalf("active = %q, %v", active, ok)
	}
	if r.Mode() != router.ModeSwitch {
		t.Fatalf("mode = %v", r.Mode())
	}
	if got := arena.VisibleChildren(router.ParsePath("body/bar")); len(got) != 1 || got[0] != "library" {
		t.Fatalf("visible bar pages = %v", got)
	}
}

func TestApplyDiscoversMixedRegions(t *testing.T) {
	f, err := Parse(`
base = "body"
[bar]
discover = "bar"
[nav]
routes = ["nav/game"]
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	a := tree.New()
	body := a.MustAdd(nil, "body", true)
	bar := a.MustAdd(body, "bar", true)
	nav := a.MustAdd(body, "nav", true)
	a.MustAdd(bar, "home", false)
	a.MustAdd(bar, "library", true)
	a.MustAdd(nav, "game", false)

	r := router.New(a)
	if err := f.Apply(r, nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if r.Registry().Len(router.RouteBar) != 2 || r.Registry().Len(router.RouteNav) != 1 {
		t.Fatalf("registry = %v / %v", r.Registry().Routes(router.RouteBar), r.Registry().Routes(router.RouteNav))
	}
	active, _ := r.Active()
	if !active.Equal(router.ParsePath("bar/library")) {
		t.Fatalf("active = %q, want the page the tree already showed", active)
	}
}

func TestArenaShowsOnlyDefault(t *testing.T) {
	f, err := Parse(`
base = "app/body"
default = "game"
[bar]
routes = ["bar/home"]
[nav]
routes = ["nav/game"]
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, err := f.Arena()
	if err != nil {
		t.Fatalf("Arena: %v", err)
	}
	if a.Visible(router.ParsePath("app/body/bar/home")) {
		t.Fatalf("home should start hidden")
	}
	if !a.Visible(router.ParsePath("app/body/nav/game")) {
		t.Fatalf("game should start visible")
	}
}

func TestValidateMatchesRegister(t *testing.T) {
	data := "[bar]\nroutes = [\"bar/home\", \"bar/settings\"]\n[nav]\nroutes = [\"settings\"]"
	_, err := Parse(data)
	if !errors.Is(err, router.ErrShadowedRoute) {
		t.Fatalf("Parse: expected ErrShadowedRoute, got %v", err)
	}

	r := router.New(tree.New()).Attach(nil)
	regErr := r.Register(
		[]router.Path{router.ParsePath("bar/home"), router.ParsePath("bar/settings")},
		[]router.Path{router.ParsePath("settings")},
		nil,
	)
	if !errors.Is(regErr, router.ErrShadowedRoute) {
		t.Fatalf("Register: expected ErrShadowedRoute, got %v", regErr)
	}
}
