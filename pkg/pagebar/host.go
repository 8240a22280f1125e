package pagebar

import (
	"context"
	"time"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/constants"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/internal"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/router"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/tree"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a virtual button press or release.
type InputEvent = internal.InputEvent

// Page draws the contents of one routed page.
type Page interface {
	Render(renderer *sdl.Renderer, bounds sdl.Rect)
}

// PageFunc adapts a function to Page.
type PageFunc func(renderer *sdl.Renderer, bounds sdl.Rect)

func (f PageFunc) Render(renderer *sdl.Renderer, bounds sdl.Rect) { f(renderer, bounds) }

// InputHandler is implemented by pages that react to buttons. Returned
// actions join the frame's batch.
type InputHandler interface {
	HandleInput(event InputEvent) []router.Action
}

// Host runs the frame loop: it gathers input into one action batch per
// frame, hands the batch to the router and repaints when the arena asks.
type Host struct {
	arena       *tree.Arena
	router      *router.Router
	tabBar      *TabBar
	pages       map[string]Page
	pending     []router.Action
	directional internal.DirectionalInput
	backKey     *internal.BackKeyListener
}

// NewHost binds an arena, a router built over it and an optional tab bar.
func NewHost(arena *tree.Arena, r *router.Router, tabBar *TabBar) *Host {
	return &Host{
		arena:       arena,
		router:      r,
		tabBar:      tabBar,
		pages:       map[string]Page{},
		directional: internal.NewDirectionalInput(),
	}
}

// AddPage sets the content for the page at route, relative to the router's base.
func (h *Host) AddPage(route router.Path, page Page) {
	h.pages[route.String()] = page
}

// Dispatch queues an action for the next frame's batch.
func (h *Host) Dispatch(action router.Action) {
	h.pending = append(h.pending, action)
}

// Router returns the host's router.
func (h *Host) Router() *router.Router {
	return h.router
}

// OpenBackKey starts reading the hardware back key configured through
// Options.BackKeyDevice or BACK_KEY_DEVICE. It does nothing when neither is set.
func (h *Host) OpenBackKey() error {
	if backKeyDevice == "" || h.backKey != nil {
		return nil
	}
	listener, err := internal.OpenBackKeyListener(internal.BackKeyConfig{DevicePath: backKeyDevice})
	if err != nil {
		return NewInfrastructureError("open_back_key", err)
	}
	listener.Start()
	h.backKey = listener
	return nil
}

// Close stops the back key reader and frees tab bar textures.
func (h *Host) Close() {
	if h.backKey != nil {
		if err := h.backKey.Close(); err != nil {
			internal.GetInternalLogger().Warn("Closing back key device", "error", err)
		}
		h.backKey = nil
	}
	if h.tabBar != nil {
		h.tabBar.Destroy()
	}
}

// Run drives frames until ctx ends or the window is closed, in which case
// it returns ErrCancelled. Navigation errors are logged and the loop keeps going.
func (h *Host) Run(ctx context.Context) error {
	window := internal.GetWindow()
	if window == nil {
		return ErrNotInitialized
	}
	if err := h.OpenBackKey(); err != nil {
		internal.GetInternalLogger().Warn("Hardware back key disabled", "error", err)
	}
	defer h.Close()

	h.arena.RequestRedraw()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		events, quit := pollEvents()
		if quit {
			return ErrCancelled
		}
		if _, err := h.Frame(events, dt); err != nil {
			internal.GetInternalLogger().Error("Navigation failed", "error", err)
		}
		h.render(window)
	}
}

// Frame applies one frame of input: the batch is built from events, pending
// dispatches and hardware back key presses, then handed to the router.
func (h *Host) Frame(events []InputEvent, dt float32) (bool, error) {
	presses := 0
	if h.backKey != nil {
		presses = h.backKey.Drain()
	}
	batch := h.collectActions(events, presses)

	moved, err := h.router.HandleActions(batch)
	if h.tabBar != nil && h.tabBar.Update(dt) {
		h.arena.RequestRedraw()
	}
	return moved, err
}

func (h *Host) collectActions(events []InputEvent, backPresses int) []router.Action {
	batch := h.pending
	h.pending = nil

	for i := 0; i < backPresses; i++ {
		batch = append(batch, router.NavigateBackAction{})
	}

	for _, event := range events {
		if h.tabBar != nil && isShoulder(event.Button) && h.directional.SetHeld(event.Button, event.Pressed) {
			if event.Pressed && h.router.ActiveKind() == router.RouteBar {
				if action, ok := h.tabBar.Step(internal.DirectionFor(event.Button).Step()); ok {
					batch = append(batch, action)
				}
			}
			continue
		}
		if !event.Pressed {
			continue
		}
		if event.Button == constants.VirtualButtonB {
			batch = append(batch, router.NavigateBackAction{})
			continue
		}
		if handler, ok := h.activePage().(InputHandler); ok {
			batch = append(batch, handler.HandleInput(event)...)
		}
	}

	switch {
	case h.tabBar == nil:
	case h.router.ActiveKind() != router.RouteBar:
		h.directional.Reset()
	default:
		if dir := h.directional.Update(); dir != internal.DirectionNone {
			if action, ok := h.tabBar.Step(dir.Step()); ok {
				batch = append(batch, action)
			}
		}
	}
	return batch
}

func isShoulder(button constants.VirtualButton) bool {
	return button == constants.VirtualButtonL1 || button == constants.VirtualButtonR1
}

func (h *Host) activePage() Page {
	active, ok := h.router.Active()
	if !ok {
		return nil
	}
	return h.pages[active.String()]
}

func (h *Host) render(window *internal.Window) {
	if _, dirty := h.arena.TakeRedraw(); !dirty {
		return
	}

	window.RenderBackground()

	bounds := sdl.Rect{W: window.GetWidth(), H: window.GetHeight()}
	showBar := h.tabBar != nil && h.router.ActiveKind() == router.RouteBar
	if showBar {
		bar := sdl.Rect{X: 0, Y: 0, W: bounds.W, H: h.tabBar.Height()}
		h.tabBar.Render(window.Renderer, window.LabelFont, window.HintFont, bar)
		bounds.Y += bar.H
		bounds.H -= bar.H
	}

	if page := h.activePage(); page != nil {
		active, _ := h.router.Active()
		if h.arena.Shown(h.router.Base().Concat(active)) {
			page.Render(window.Renderer, bounds)
		}
	}

	window.Present()
}

func pollEvents() ([]InputEvent, bool) {
	var events []InputEvent
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return events, true
		}
		if e, ok := internal.TranslateEvent(event); ok {
			events = append(events, e)
		}
	}
	return events, false
}
