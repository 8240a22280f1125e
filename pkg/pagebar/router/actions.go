package router

// Action is a navigation request delivered to the router in a per-frame batch.
// The concrete types are NavigateToAction, NavigateBackAction and
// IndicatorSelectedAction.
type Action interface {
	action()
}

// NavigateToAction asks for the page at Path. Path may be a full route or
// any run of identifiers contained in one, such as a page's own id.
type NavigateToAction struct {
	Path Path
}

// NavigateBackAction asks for the previous page, usually fired by a back
// icon inside a page or by the hardware back key.
type NavigateBackAction struct{}

// IndicatorSelectedAction reports that the user picked a new index on the
// bound indicator.
type IndicatorSelectedAction struct {
	Index int
}

func (NavigateToAction) action()        {}
func (NavigateBackAction) action()      {}
func (IndicatorSelectedAction) action() {}

// HandleActions runs at most one transition for a batch of actions.
//
// Back requests are tried first, then explicit navigation, then indicator
// selections. The first request that changes the active page ends the batch;
// requests that cannot apply (nothing to go back to, an indicator index out of
// range) are skipped. An unregistered navigation target stops the batch and
// its error is returned.
func (r *Router) HandleActions(actions []Action) (bool, error) {
	if !r.Attached() || len(actions) == 0 {
		return false, nil
	}
	if r.inHook {
		batch := append([]Action(nil), actions...)
		r.deferred = append(r.deferred, func() error {
			_, err := r.HandleActions(batch)
			return err
		})
		return false, nil
	}

	for _, a := range actions {
		if _, ok := a.(NavigateBackAction); !ok {
			continue
		}
		moved, err := r.navigateBack()
		if err != nil || moved {
			return moved, err
		}
	}

	for _, a := range actions {
		nav, ok := a.(NavigateToAction)
		if !ok {
			continue
		}
		if err := r.navigateTo(nav.Path); err != nil {
			return false, err
		}
		return true, nil
	}

	for _, a := range actions {
		sel, ok := a.(IndicatorSelectedAction)
		if !ok {
			continue
		}
		target, ok := r.IndicatorChanged(sel.Index)
		if !ok {
			continue
		}
		if err := r.navigateTo(target); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}
