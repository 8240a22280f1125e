package router

import (
	"errors"
	"io"
	"log/slog"
)

// NavMode selects how NavigateBack behaves.
type NavMode int

const (
	// ModeHistory unwinds the stack one page per back request and runs the
	// OnBack hook after each back transition.
	ModeHistory NavMode = iota
	// ModeSwitch treats back as a forward navigation to the popped page.
	// The page being left is pushed again, so repeated back requests
	// alternate between two pages. No hook is run.
	ModeSwitch
)

func (m NavMode) String() string {
	switch m {
	case ModeHistory:
		return "history"
	case ModeSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// BackHook runs after a back transition in ModeHistory.
type BackHook interface {
	AfterBack(from, to Path)
}

// BackHookFunc adapts a function to BackHook.
type BackHookFunc func(from, to Path)

func (f BackHookFunc) AfterBack(from, to Path) {
	f(from, to)
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for transition tracing. The default
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMode sets the initial back-navigation mode.
func WithMode(mode NavMode) Option {
	return func(r *Router) {
		r.mode = mode
	}
}

// Router decides which registered page is visible.
//
// It owns the route registry, the navigation stack and the active page
// pointer, and drives the widget tree only through the Tree interface.
// A Router is not safe for concurrent use; the host delivers all events
// on one goroutine.
type Router struct {
	tree     Tree
	base     Path
	attached bool

	registry  *Registry
	stack     *Stack
	indicator Indicator
	hook      BackHook
	mode      NavMode
	logger    *slog.Logger

	active      Path
	activeKind  RouteKind
	defaultPage Path
	built       bool

	inHook   bool
	deferred []func() error
}

// New creates a Router over tree. It does nothing until Attach is called.
func New(tree Tree, opts ...Option) *Router {
	r := &Router{
		tree:     tree,
		registry: NewRegistry(nil, nil),
		stack:    NewStack(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Attach sets the base path every route is relative to.
func (r *Router) Attach(base Path) *Router {
	r.base = base.Clone()
	r.attached = r.tree != nil
	return r
}

// Attached reports whether the router knows its place in a tree.
func (r *Router) Attached() bool {
	return r.attached
}

// Base returns the path routes are resolved against.
func (r *Router) Base() Path {
	return r.base.Clone()
}

// OnBack registers the hook run after each back transition in ModeHistory.
func (r *Router) OnBack(hook BackHook) *Router {
	r.hook = hook
	return r
}

// SetMode changes the back-navigation mode.
func (r *Router) SetMode(mode NavMode) *Router {
	r.mode = mode
	return r
}

// Mode returns the back-navigation mode.
func (r *Router) Mode() NavMode {
	return r.mode
}

// Registry returns the current route registry.
func (r *Router) Registry() *Registry {
	return r.registry
}

// Stack returns the navigation history.
func (r *Router) Stack() *Stack {
	return r.stack
}

// Active returns the page currently shown.
func (r *Router) Active() (Path, bool) {
	return r.active.Clone(), r.active != nil
}

// ActiveKind returns the region of the active page.
func (r *Router) ActiveKind() RouteKind {
	return r.activeKind
}

// Default returns the page back navigation falls back to when the stack is empty.
func (r *Router) Default() (Path, bool) {
	return r.defaultPage.Clone(), r.defaultPage != nil
}

// Built reports whether Build has completed since the last registration.
func (r *Router) Built() bool {
	return r.built
}

// Register replaces the registry with the given bar and nav routes and
// resets all navigation state. Routes are relative to the base path.
// indicator may be nil.
//
// Calling Register before Attach is a no-op.
func (r *Router) Register(bar, nav []Path, indicator Indicator) error {
	if !r.attached {
		r.logger.Debug("register ignored", "error", ErrNotAttached)
		return nil
	}

	registry := NewRegistry(bar, nav)
	if err := registry.Validate(); err != nil {
		return err
	}

	r.registry = registry
	r.indicator = indicator
	r.stack = NewStack()
	r.active = nil
	r.activeKind = RouteBar
	r.defaultPage = nil
	r.built = false
	r.deferred = nil

	for _, kind := range []RouteKind{RouteBar, RouteNav} {
		for _, route := range registry.list(kind) {
			if !r.tree.Find(r.abs(route)) {
				r.logger.Warn("registered route has no tree node", "route", route.String(), "kind", kind.String())
			}
		}
	}

	r.logger.Debug("routes registered", "bar", len(registry.bar), "nav", len(registry.nav), "indicator", indicator != nil)
	return nil
}

// Discover registers every current child of barRegion as a bar route and
// every child of navRegion as a nav route, in tree order. Both regions are
// relative to the base path; an empty region contributes no routes.
func (r *Router) Discover(barRegion, navRegion Path, indicator Indicator) error {
	if !r.attached {
		r.logger.Debug("discover ignored", "error", ErrNotAttached)
		return nil
	}

	var bar, nav []Path
	if len(barRegion) > 0 {
		for _, id := range r.tree.Children(r.abs(barRegion)) {
			bar = append(bar, barRegion.Join(id))
		}
	}
	if len(navRegion) > 0 {
		for _, id := range r.tree.Children(r.abs(navRegion)) {
			nav = append(nav, navRegion.Join(id))
		}
	}
	return r.Register(bar, nav, indicator)
}

// Designate marks p as the active page and, if no default exists yet, as the
// default page. Before Build it only records the choice; after Build the
// page is shown immediately. The navigation stack is never touched.
func (r *Router) Designate(p Path) error {
	if !r.attached {
		r.logger.Debug("designate ignored", "error", ErrNotAttached)
		return nil
	}

	route, err := r.locate("designate", p)
	if err != nil {
		return err
	}

	if r.defaultPage == nil {
		r.defaultPage = route.Path.Clone()
	}
	if !r.built {
		r.active = route.Path
		r.activeKind = route.Kind
		return nil
	}
	r.transition(route)
	return nil
}

// Build finalizes registration.
//
// With a designated page, its visibility is applied to the tree so the tree
// matches the router. Otherwise the first registered page the tree already
// shows is adopted as both active and default page, leaving the tree as is.
// If the tree shows none, the first registered page is shown.
func (r *Router) Build() error {
	if !r.attached {
		r.logger.Debug("build ignored", "error", ErrNotAttached)
		return nil
	}

	switch {
	case r.active != nil:
		r.transition(Route{Path: r.active, Kind: r.activeKind})
	default:
		route, found := r.findVisible()
		if found {
			r.active = route.Path
			r.activeKind = route.Kind
			r.SyncIndicator()
		} else if route, ok := r.firstRoute(); ok {
			r.transition(route)
		}
		if r.active != nil && r.defaultPage == nil {
			r.defaultPage = r.active.Clone()
		}
	}

	r.built = true
	r.logger.Debug("router built", "active", r.active.String(), "default", r.defaultPage.String())
	return nil
}

// NavigateTo shows the registered page containing p and pushes the page
// being left onto the stack. An unregistered p returns a *RouteError
// wrapping ErrUnregisteredRoute and leaves all state untouched.
func (r *Router) NavigateTo(p Path) error {
	if !r.attached {
		r.logger.Debug("navigate ignored", "error", ErrNotAttached)
		return nil
	}
	if r.inHook {
		target := p.Clone()
		r.deferred = append(r.deferred, func() error { return r.NavigateTo(target) })
		return nil
	}
	return r.navigateTo(p)
}

// MustNavigateTo is NavigateTo for callers that treat a missing route as a
// programming error. It panics on failure.
func (r *Router) MustNavigateTo(p Path) {
	if err := r.NavigateTo(p); err != nil {
		panic(err)
	}
}

// NavigateBack returns to the most recent page on the stack, or to the
// default page when the stack is empty. With neither it does nothing.
func (r *Router) NavigateBack() error {
	if !r.attached {
		r.logger.Debug("navigate back ignored", "error", ErrNotAttached)
		return nil
	}
	if r.inHook {
		r.deferred = append(r.deferred, r.NavigateBack)
		return nil
	}
	_, err := r.navigateBack()
	return err
}

func (r *Router) navigateTo(p Path) error {
	route, err := r.locate("navigate", p)
	if err != nil {
		return err
	}
	if r.active != nil {
		r.stack.Push(r.active, r.activeKind)
	}
	r.transition(route)
	return nil
}

func (r *Router) navigateBack() (bool, error) {
	from := r.active.Clone()

	entry, popped := r.stack.Pop()
	var target Route
	switch {
	case popped:
		target = Route{Path: entry.Path, Kind: entry.Kind}
	case r.defaultPage != nil:
		route, err := r.locate("navigate back", r.defaultPage)
		if err != nil {
			return false, err
		}
		target = route
	default:
		r.logger.Debug("nothing to navigate back to")
		return false, nil
	}

	if r.mode == ModeSwitch {
		if popped && r.active != nil {
			r.stack.Push(r.active, r.activeKind)
		}
		r.transition(target)
		return true, nil
	}

	r.transition(target)
	return true, r.runBackHook(from, target.Path)
}

func (r *Router) runBackHook(from, to Path) error {
	if r.hook == nil {
		return nil
	}

	r.callBackHook(from, to)

	deferred := r.deferred
	r.deferred = nil
	var errs []error
	for _, fn := range deferred {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Router) callBackHook(from, to Path) {
	r.inHook = true
	defer func() {
		r.inHook = false
		if rec := recover(); rec != nil {
			r.deferred = nil
			panic(rec)
		}
	}()
	r.hook.AfterBack(from, to.Clone())
}

// transition makes route the only visible page of its region, records it as
// active, syncs the indicator and requests a redraw of the region.
func (r *Router) transition(route Route) {
	from := r.active

	r.activeKind = route.Kind
	r.show(route)
	r.active = route.Path.Clone()
	r.SyncIndicator()
	r.tree.Redraw(r.abs(route.Path).Parent())

	r.logger.Debug("navigated",
		"from", from.String(),
		"to", route.Path.String(),
		"kind", route.Kind.String(),
		"stack", r.stack.Len(),
	)
}

func (r *Router) show(route Route) {
	for _, sibling := range r.registry.list(route.Kind) {
		abs := r.abs(sibling)
		if !r.tree.Find(abs) {
			r.logger.Warn("skipping route without tree node", "route", sibling.String(), "error", ErrMissingNode)
			continue
		}
		r.tree.SetVisible(abs, sibling.Equal(route.Path))
	}
}

func (r *Router) findVisible() (Route, bool) {
	for _, kind := range []RouteKind{RouteBar, RouteNav} {
		for _, route := range r.registry.list(kind) {
			if r.tree.Visible(r.abs(route)) {
				return Route{Path: route.Clone(), Kind: kind}, true
			}
		}
	}
	return Route{}, false
}

func (r *Router) firstRoute() (Route, bool) {
	if p, ok := r.registry.At(RouteBar, 0); ok {
		return Route{Path: p, Kind: RouteBar}, true
	}
	if p, ok := r.registry.At(RouteNav, 0); ok {
		return Route{Path: p, Kind: RouteNav}, true
	}
	return Route{}, false
}

func (r *Router) locate(op string, p Path) (Route, error) {
	route, _, err := r.registry.Locate(p)
	if err != nil {
		var routeErr *RouteError
		if errors.As(err, &routeErr) {
			routeErr.Op = op
		}
		r.logger.Error("route lookup failed", "op", op, "path", p.String(), "error", err)
		return Route{}, err
	}
	return route, nil
}

func (r *Router) abs(p Path) Path {
	return r.base.Concat(p)
}
