package pagebar

import (
	"testing"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/constants"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/router"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/tree"
)

func threeTabs(opts ...TabBarOption) *TabBar {
	return NewTabBar([]Tab{{Label: "Home"}, {Label: "Library"}, {Label: "Settings"}}, opts...)
}

func TestTabBarStep(t *testing.T) {
	bar := threeTabs()

	if _, ok := bar.Step(-1); ok {
		t.Fatalf("stepping left of the first tab without wrap must be refused")
	}
	action, ok := bar.HandleButton(constants.VirtualButtonR1)
	if !ok {
		t.Fatalf("R1 should produce an action")
	}
	if sel, _ := action.(router.IndicatorSelectedAction); sel.Index != 1 {
		t.Fatalf("R1 action = %#v, want index 1", action)
	}
	if _, ok := bar.HandleButton(constants.VirtualButtonA); ok {
		t.Fatalf("A is not a tab button")
	}

	wrapping := threeTabs(WithWrap(true))
	action, ok = wrapping.Step(-1)
	if !ok || action.(router.IndicatorSelectedAction).Index != 2 {
		t.Fatalf("wrapping step = %#v, %v; want index 2", action, ok)
	}
}

func TestTabBarSetSelectedIndex(t *testing.T) {
	bar := threeTabs(WithSlideDuration(0))
	bar.SetSelectedIndex(2)
	if bar.Selected() != 2 || bar.Highlight() != 2 || bar.Animating() {
		t.Fatalf("selected %d highlight %v animating %v", bar.Selected(), bar.Highlight(), bar.Animating())
	}
	bar.SetSelectedIndex(7)
	bar.SetSelectedIndex(-1)
	if bar.Selected() != 2 {
		t.Fatalf("out-of-range index changed selection to %d", bar.Selected())
	}
}

func TestTabBarSlideAnimation(t *testing.T) {
	bar := threeTabs(WithSlideDuration(0.2))
	bar.SetSelectedIndex(2)
	if !bar.Animating() {
		t.Fatalf("expected animation to start")
	}

	if !bar.Update(0.1) {
		t.Fatalf("Update should request a repaint mid-slide")
	}
	if h := bar.Highlight(); h <= 0 || h >= 2 {
		t.Fatalf("mid-slide highlight = %v, want between 0 and 2", h)
	}

	bar.Update(0.2)
	if bar.Animating() || bar.Highlight() != 2 {
		t.Fatalf("after slide: animating %v highlight %v", bar.Animating(), bar.Highlight())
	}
	if bar.Update(0.1) {
		t.Fatalf("idle bar should not request a repaint")
	}
}

func TestTabsFor(t *testing.T) {
	routes := []router.Path{router.ParsePath("bar/home"), router.ParsePath("bar/library")}
	tabs := TabsFor(routes, map[string]Tab{"bar/library": {Label: "tab.library", Icon: "lib.svg"}})
	if tabs[0].Label != "home" || tabs[1].Label != "tab.library" || tabs[1].Icon != "lib.svg" {
		t.Fatalf("tabs = %+v", tabs)
	}
}

func TestTabBarFollowsRouter(t *testing.T) {
	arena := tree.New()
	body := arena.MustAdd(nil, "body", true)
	bars := arena.MustAdd(body, "bar", true)
	arena.MustAdd(bars, "home", true)
	arena.MustAdd(bars, "library", false)
	navs := arena.MustAdd(body, "nav", true)
	arena.MustAdd(navs, "details", false)

	bar := NewTabBar([]Tab{{Label: "Home"}, {Label: "Library"}}, WithSlideDuration(0))
	r := router.New(arena).Attach(router.NewPath("body"))
	if err := r.Discover(router.NewPath("bar"), router.NewPath("nav"), bar); err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if err := r.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	action, _ := bar.Step(1)
	if moved, err := r.HandleActions([]router.Action{action}); err != nil || !moved {
		t.Fatalf("HandleActions = %v, %v", moved, err)
	}
	if bar.Selected() != 1 {
		t.Fatalf("tab bar selected %d, want 1", bar.Selected())
	}

	if err := r.NavigateTo(router.NewPath("details")); err != nil {
		t.Fatalf("NavigateTo: %v", err)
	}
	if bar.Selected() != 1 {
		t.Fatalf("nav page must not move the tab bar, selected %d", bar.Selected())
	}
}
