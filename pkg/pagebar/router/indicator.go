package router

// Indicator is an external selector, usually a tab bar, whose highlighted
// index follows the active bar route.
type Indicator interface {
	SetSelectedIndex(index int)
}

// SyncIndicator pushes the active bar route's index to the bound indicator.
// It does nothing without an indicator or while a nav page is active.
func (r *Router) SyncIndicator() {
	if r.indicator == nil || r.active == nil {
		return
	}
	route, index, err := r.registry.Locate(r.active)
	if err != nil {
		r.logger.Warn("active page no longer registered", "active", r.active.String(), "error", err)
		return
	}
	if route.Kind != RouteBar {
		return
	}
	r.indicator.SetSelectedIndex(index)
}

// IndicatorChanged maps an indicator index back to its bar route.
// The bool is false when index is out of range.
func (r *Router) IndicatorChanged(index int) (Path, bool) {
	p, ok := r.registry.At(RouteBar, index)
	if !ok {
		r.logger.Debug("indicator index out of range", "index", index, "bar_routes", r.registry.Len(RouteBar))
		return nil, false
	}
	return p, true
}
