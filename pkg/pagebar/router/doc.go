// Package router decides which page of a multi-page widget tree is visible.
//
// Pages are addressed by Path and split into two regions. Bar routes are the
// persistent destinations behind a tab bar; nav routes are pages reached only
// by explicit navigation. Exactly one page of the active region is visible at
// a time. The router flips visibility through the Tree interface and never
// owns the nodes it toggles.
//
// # Basic Usage
//
//	r := router.New(pages).Attach(router.NewPath("body"))
//
//	err := r.Register(
//	    []router.Path{router.ParsePath("bar/home"), router.ParsePath("bar/library")},
//	    []router.Path{router.ParsePath("nav/game")},
//	    tabBar, // may be nil
//	)
//
//	// Optional: pick the start page. Without it, Build adopts whichever
//	// registered page the tree already shows.
//	_ = r.Designate(router.ParsePath("bar/home"))
//	_ = r.Build()
//
//	_ = r.NavigateTo(router.NewPath("game")) // a page id is enough
//	_ = r.NavigateBack()
//
// # Back Navigation
//
// Forward navigation pushes the page being left onto a Stack. In ModeHistory
// NavigateBack pops one entry per call and then runs the OnBack hook. In
// ModeSwitch it navigates to the popped page as if going forward, so repeated
// back requests alternate between the last two pages. With an empty stack,
// both modes fall back to the default page without touching the stack.
//
// # Event Batches
//
// Hosts collect one batch of Actions per frame and pass it to HandleActions.
// Back requests are resolved first, then explicit navigation, then indicator
// selections, and at most one transition happens per batch.
//
// # Errors
//
// Navigating to a path no registered route contains returns a *RouteError
// wrapping ErrUnregisteredRoute. This is a setup bug, so it is always
// returned; use MustNavigateTo to turn it into a panic instead. Calls made
// before Attach, back requests with nowhere to go, and indicator indices out
// of range are absorbed silently.
package router
