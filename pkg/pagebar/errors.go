package pagebar

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/router"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user left the host loop (window closed, quit event).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNotInitialized is returned when a host is started before Init.
	ErrNotInitialized = errors.New("pagebar not initialized")

	// ErrNoTabs is returned when a tab bar is built for a router without bar routes.
	ErrNoTabs = errors.New("no bar routes to show as tabs")
)

// InfrastructureError represents a framework-level error that indicates
// something is wrong with pagebar itself (SDL failed to start, a font or icon
// could not be loaded, a texture could not be created). These errors are
// typically fatal or require framework-level recovery.
//
// Navigation failures are not infrastructure errors; they surface as
// *router.RouteError.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "rasterize_icon")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pagebar: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pagebar: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsRouteError reports whether err came from the router.
func IsRouteError(err error) bool {
	var routeErr *router.RouteError
	return errors.As(err, &routeErr)
}
