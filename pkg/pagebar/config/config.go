// Package config loads route declarations from TOML files and applies them
// to a router.
//
// A route file looks like:
//
//	base = "body"
//	mode = "history"      # or "switch"
//	default = "bar/home"
//
//	[bar]
//	routes = ["bar/home", "bar/library", "bar/settings"]
//
//	[nav]
//	discover = "nav"      # register every child of body/nav instead of listing them
//
//	[[tabs]]
//	route = "bar/home"
//	label = "tab.home"
//	icon = "icons/home.svg"
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/router"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/tree"
	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid route config")

// File is a decoded route file.
type File struct {
	Base    string `toml:"base"`    // Path the routes are relative to
	Mode    string `toml:"mode"`    // "history" (default) or "switch"
	Default string `toml:"default"` // Page shown first and used as the back fallback
	Bar     Region `toml:"bar"`
	Nav     Region `toml:"nav"`
	Tabs    []Tab  `toml:"tabs"`
}

// Region lists the routes of one kind, or names a tree region to scan.
type Region struct {
	Discover string   `toml:"discover"` // Region whose children become routes
	Routes   []string `toml:"routes"`   // Explicit routes, in indicator order
}

// Tab describes how a bar route appears in the tab bar.
type Tab struct {
	Route string `toml:"route"`
	Label string `toml:"label"` // Message id, or literal text when no translation exists
	Icon  string `toml:"icon"`  // Optional SVG file
}

// Load reads and validates a route file.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &f, nil
}

// Parse decodes and validates a route file held in memory.
func Parse(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &f, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(names, ", "))
}

// NavMode returns the configured back-navigation mode.
func (f *File) NavMode() (router.NavMode, error) {
	switch strings.ToLower(strings.TrimSpace(f.Mode)) {
	case "", "history":
		return router.ModeHistory, nil
	case "switch":
		return router.ModeSwitch, nil
	default:
		return 0, fmt.Errorf("%w: mode %q (want history or switch)", ErrInvalid, f.Mode)
	}
}

// BasePath returns the parsed base path.
func (f *File) BasePath() router.Path {
	return router.ParsePath(f.Base)
}

// BarPaths returns the explicit bar routes.
func (f *File) BarPaths() []router.Path {
	return parseAll(f.Bar.Routes)
}

// NavPaths returns the explicit nav routes.
func (f *File) NavPaths() []router.Path {
	return parseAll(f.Nav.Routes)
}

// Validate checks the file without a tree. Routes from discovered regions
// are not known yet, so the default page and tabs are only checked against
// explicit route lists.
func (f *File) Validate() error {
	if _, err := f.NavMode(); err != nil {
		return err
	}
	if f.Bar.Discover != "" && len(f.Bar.Routes) > 0 {
		return fmt.Errorf("%w: [bar] sets both discover and routes", ErrInvalid)
	}
	if f.Nav.Discover != "" && len(f.Nav.Routes) > 0 {
		return fmt.Errorf("%w: [nav] sets both discover and routes", ErrInvalid)
	}
	if f.Bar.Discover == "" && len(f.Bar.Routes) == 0 && f.Nav.Discover == "" && len(f.Nav.Routes) == 0 {
		return fmt.Errorf("%w: no routes declared", ErrInvalid)
	}
	for _, list := range [][]string{f.Bar.Routes, f.Nav.Routes} {
		for _, raw := range list {
			if router.ParsePath(raw).IsEmpty() {
				return fmt.Errorf("%w: empty route %q", ErrInvalid, raw)
			}
		}
	}

	registry := router.NewRegistry(f.BarPaths(), f.NavPaths())
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if f.Bar.Discover != "" || f.Nav.Discover != "" {
		return nil
	}

	if f.Default != "" {
		if _, _, err := registry.Locate(router.ParsePath(f.Default)); err != nil {
			return fmt.Errorf("%w: default: %v", ErrInvalid, err)
		}
	}
	for _, tab := range f.Tabs {
		route, _, err := registry.Locate(router.ParsePath(tab.Route))
		if err != nil {
			return fmt.Errorf("%w: tab: %v", ErrInvalid, err)
		}
		if route.Kind != router.RouteBar {
			return fmt.Errorf("%w: tab %q points at a nav route", ErrInvalid, tab.Route)
		}
	}
	return nil
}

// Apply attaches r to the configured base, registers the routes, designates
// the default page and builds the router.
func (f *File) Apply(r *router.Router, indicator router.Indicator) error {
	mode, err := f.NavMode()
	if err != nil {
		return err
	}
	r.Attach(f.BasePath()).SetMode(mode)

	if f.Bar.Discover != "" || f.Nav.Discover != "" {
		err = f.discover(r, indicator)
	} else {
		err = r.Register(f.BarPaths(), f.NavPaths(), indicator)
	}
	if err != nil {
		return fmt.Errorf("config: register: %w", err)
	}

	if f.Default != "" {
		if err := r.Designate(router.ParsePath(f.Default)); err != nil {
			return fmt.Errorf("config: default: %w", err)
		}
	}
	if err := r.Build(); err != nil {
		return fmt.Errorf("config: build: %w", err)
	}
	return nil
}

func (f *File) discover(r *router.Router, indicator router.Indicator) error {
	if err := r.Discover(router.ParsePath(f.Bar.Discover), router.ParsePath(f.Nav.Discover), indicator); err != nil {
		return err
	}
	if f.Bar.Discover != "" && f.Nav.Discover != "" {
		return nil
	}

	// One region is scanned and the other listed explicitly.
	bar, nav := f.BarPaths(), f.NavPaths()
	if f.Bar.Discover != "" {
		bar = r.Registry().Routes(router.RouteBar)
	} else {
		nav = r.Registry().Routes(router.RouteNav)
	}
	return r.Register(bar, nav, indicator)
}

// Arena builds a widget tree holding the base and every explicit route, with
// only the default page (or the first bar route) visible. It is meant for
// headless checks of a route file.
func (f *File) Arena() (*tree.Arena, error) {
	a := tree.New()
	base := f.BasePath()
	if err := ensure(a, base, true); err != nil {
		return nil, err
	}

	shown := router.ParsePath(f.Default)
	bars := f.BarPaths()
	if shown.IsEmpty() && len(bars) > 0 {
		shown = bars[0]
	}
	registry := router.NewRegistry(bars, f.NavPaths())
	if route, _, err := registry.Locate(shown); err == nil {
		shown = route.Path
	}

	for _, list := range [][]router.Path{bars, f.NavPaths()} {
		for _, route := range list {
			if err := ensure(a, base.Concat(route.Parent()), true); err != nil {
				return nil, err
			}
			if _, err := a.Add(base.Concat(route.Parent()), route.Last(), route.Equal(shown)); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// ensure creates every missing node along path.
func ensure(a *tree.Arena, path router.Path, visible bool) error {
	for i := range path {
		if a.Find(path[:i+1]) {
			continue
		}
		if _, err := a.Add(path[:i], path[i], visible); err != nil {
			return err
		}
	}
	return nil
}

func parseAll(raw []string) []router.Path {
	out := make([]router.Path, 0, len(raw))
	for _, s := range raw {
		out = append(out, router.ParsePath(s))
	}
	return out
}
