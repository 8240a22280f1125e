package router

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// RouteKind tags which region of the tree a route lives in.
type RouteKind int

const (
	RouteBar RouteKind = iota // Persistent page reachable through the indicator
	RouteNav                  // Transient page reachable only by explicit navigation
)

func (k RouteKind) String() string {
	switch k {
	case RouteBar:
		return "bar"
	case RouteNav:
		return "nav"
	default:
		return "unknown"
	}
}

// Route is a registered path together with its classification.
type Route struct {
	Path Path
	Kind RouteKind
}

const maxSuggestions = 3

// Registry holds the ordered bar and nav route lists.
// The order of each list is significant: a bar route's position is the
// index shown by the indicator.
type Registry struct {
	bar []Path
	nav []Path
}

// NewRegistry creates a registry from copies of the given route lists.
func NewRegistry(bar, nav []Path) *Registry {
	return &Registry{
		bar: clonePaths(bar),
		nav: clonePaths(nav),
	}
}

// Classify returns the kind of the route p resolves to. A registered path
// always classifies as the kind it was registered under.
func (r *Registry) Classify(p Path) (RouteKind, error) {
	route, _, err := r.Locate(p)
	if err != nil {
		return 0, err
	}
	return route.Kind, nil
}

// Locate classifies p and also returns the matching registered route and its
// index within that kind's list. An exact match in either list wins; after
// that the first route containing p is used, bar routes before nav routes.
func (r *Registry) Locate(p Path) (Route, int, error) {
	if r != nil && len(p) > 0 {
		if route, i, ok := r.find(p.Equal); ok {
			return route, i, nil
		}
		contains := func(route Path) bool { return route.Contains(p) }
		if route, i, ok := r.find(contains); ok {
			return route, i, nil
		}
	}
	return Route{}, -1, &RouteError{
		Op:          "classify",
		Path:        p.Clone(),
		Suggestions: r.Suggest(p),
		Err:         ErrUnregisteredRoute,
	}
}

// Routes returns a copy of the routes of the given kind.
func (r *Registry) Routes(kind RouteKind) []Path {
	if r == nil {
		return nil
	}
	if kind == RouteBar {
		return clonePaths(r.bar)
	}
	return clonePaths(r.nav)
}

// Len returns the number of routes of the given kind.
func (r *Registry) Len(kind RouteKind) int {
	if r == nil {
		return 0
	}
	if kind == RouteBar {
		return len(r.bar)
	}
	return len(r.nav)
}

// At returns the route of the given kind at index i.
func (r *Registry) At(kind RouteKind, i int) (Path, bool) {
	if r == nil {
		return nil, false
	}
	list := r.nav
	if kind == RouteBar {
		list = r.bar
	}
	if i < 0 || i >= len(list) {
		return nil, false
	}
	return list[i].Clone(), true
}

// Suggest returns up to three registered routes whose string form fuzzily
// matches p, closest first.
func (r *Registry) Suggest(p Path) []Path {
	if r == nil || len(p) == 0 {
		return nil
	}
	all := make([]Path, 0, len(r.bar)+len(r.nav))
	all = append(all, r.bar...)
	all = append(all, r.nav...)
	names := make([]string, len(all))
	for i, route := range all {
		names[i] = route.String()
	}

	ranks := fuzzy.RankFindNormalizedFold(p.Last(), names)
	sort.Sort(ranks)

	var out []Path
	for _, rank := range ranks {
		out = append(out, all[rank.OriginalIndex].Clone())
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// find returns the first route matching match, bar routes first.
func (r *Registry) find(match func(route Path) bool) (Route, int, bool) {
	for _, kind := range []RouteKind{RouteBar, RouteNav} {
		for i, route := range r.list(kind) {
			if match(route) {
				return Route{Path: route.Clone(), Kind: kind}, i, true
			}
		}
	}
	return Route{}, -1, false
}

func (r *Registry) list(kind RouteKind) []Path {
	if r == nil {
		return nil
	}
	if kind == RouteBar {
		return r.bar
	}
	return r.nav
}

// Validate rejects a path registered twice, in the same list or in both,
// and a route that contains another registered route. The shorter route
// would make every request for it also match the longer one.
func (r *Registry) Validate() error {
	if r == nil {
		return nil
	}
	all := make([]Route, 0, len(r.bar)+len(r.nav))
	for _, kind := range []RouteKind{RouteBar, RouteNav} {
		for _, p := range r.list(kind) {
			all = append(all, Route{Path: p, Kind: kind})
		}
	}

	for i, a := range all {
		for _, b := range all[i+1:] {
			switch {
			case a.Path.Equal(b.Path):
				return &RouteError{Op: "register", Path: a.Path.Clone(), Err: ErrDuplicateRoute}
			case a.Path.Contains(b.Path):
				return shadowed(b, a)
			case b.Path.Contains(a.Path):
				return shadowed(a, b)
			}
		}
	}
	return nil
}

func shadowed(short, long Route) error {
	return &RouteError{
		Op:   "register",
		Path: short.Path.Clone(),
		Err:  fmt.Errorf("%w: %s route %q", ErrShadowedRoute, long.Kind, long.Path.String()),
	}
}
