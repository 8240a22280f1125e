package router

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned (wrapped in a *RouteError) by the router.
var (
	// ErrUnregisteredRoute means a path matched neither a bar route nor a nav route.
	// It is a configuration bug and is always propagated to the caller.
	ErrUnregisteredRoute = errors.New("route is not registered")

	// ErrDuplicateRoute means the same path was registered twice.
	ErrDuplicateRoute = errors.New("route registered more than once")

	// ErrShadowedRoute means a registered route is a prefix or trailing run
	// of another registered route.
	ErrShadowedRoute = errors.New("route overlaps another registered route")

	// ErrNotAttached means the router has no base path yet.
	// Router methods absorb it and become no-ops; it is exported for callers
	// that want to check Attached themselves.
	ErrNotAttached = errors.New("router is not attached to a tree")

	// ErrMissingNode means a registered route has no node in the widget tree.
	ErrMissingNode = errors.New("route has no node in the tree")
)

// RouteError describes a failed router operation on a specific path.
type RouteError struct {
	Op          string // Operation that failed (e.g., "navigate", "designate")
	Path        Path   // Path the operation was given
	Suggestions []Path // Closest registered routes, when the path was unknown
	Err         error  // Underlying sentinel
}

func (e *RouteError) Error() string {
	msg := fmt.Sprintf("router: %s %q: %v", e.Op, e.Path.String(), e.Err)
	if len(e.Suggestions) > 0 {
		names := make([]string, 0, len(e.Suggestions))
		for _, s := range e.Suggestions {
			names = append(names, s.String())
		}
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(names, ", "))
	}
	return msg
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// IsUnregistered reports whether err was caused by an unregistered route.
func IsUnregistered(err error) bool {
	return errors.Is(err, ErrUnregisteredRoute)
}
