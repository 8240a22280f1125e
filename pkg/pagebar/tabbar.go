package pagebar

import (
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/constants"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/internal"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/router"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Tab is one entry of the tab bar.
type Tab struct {
	Label string // Message id or literal text
	Icon  string // Optional SVG path
}

// TabBar draws one tab per bar route and reports the user's choice as
// router actions. It is the router's bound indicator.
type TabBar struct {
	tabs      []Tab
	selected  int
	highlight float32 // Highlight position in tab slots
	tween     *gween.Tween
	slide     float32
	wrap      bool
	height    int32
	localizer *Localizer
	textures  *internal.LabelCache
	badIcons  map[string]bool
}

// TabBarOption configures a TabBar.
type TabBarOption func(*TabBar)

// WithWrap lets stepping past the last tab select the first, and back.
func WithWrap(wrap bool) TabBarOption {
	return func(t *TabBar) { t.wrap = wrap }
}

// WithLocalizer translates tab labels.
func WithLocalizer(l *Localizer) TabBarOption {
	return func(t *TabBar) { t.localizer = l }
}

// WithSlideDuration sets the highlight animation length in seconds. Zero disables it.
func WithSlideDuration(seconds float32) TabBarOption {
	return func(t *TabBar) { t.slide = seconds }
}

// WithHeight sets the bar height in logical pixels.
func WithHeight(height int32) TabBarOption {
	return func(t *TabBar) { t.height = height }
}

// NewTabBar creates a tab bar with the first tab selected.
func NewTabBar(tabs []Tab, opts ...TabBarOption) *TabBar {
	t := &TabBar{
		tabs:   append([]Tab(nil), tabs...),
		slide:  constants.DefaultTabSlideSeconds,
		height: constants.DefaultTabBarHeight,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TabsFor creates one tab per bar route, labelled with the route's last id.
// Labels found in labels (keyed by route string) take precedence.
func TabsFor(routes []router.Path, labels map[string]Tab) []Tab {
	tabs := make([]Tab, 0, len(routes))
	for _, route := range routes {
		tab, ok := labels[route.String()]
		if !ok || tab.Label == "" {
			tab.Label = route.Last()
		}
		tabs = append(tabs, tab)
	}
	return tabs
}

// Len returns the number of tabs.
func (t *TabBar) Len() int {
	return len(t.tabs)
}

// Selected returns the selected tab index.
func (t *TabBar) Selected() int {
	return t.selected
}

// Height returns the bar height in logical pixels.
func (t *TabBar) Height() int32 {
	return t.height
}

// Highlight returns the current highlight position in tab slots. It lags
// Selected while the slide animation runs.
func (t *TabBar) Highlight() float32 {
	return t.highlight
}

// Animating reports whether the highlight is still moving.
func (t *TabBar) Animating() bool {
	return t.tween != nil
}

// SetSelectedIndex moves the highlight to index. Out-of-range indices are ignored.
func (t *TabBar) SetSelectedIndex(index int) {
	if index < 0 || index >= len(t.tabs) || index == t.selected && t.tween == nil {
		return
	}
	t.selected = index
	if t.slide <= 0 {
		t.highlight = float32(index)
		t.tween = nil
		return
	}
	t.tween = gween.New(t.highlight, float32(index), t.slide, ease.OutCubic)
}

// Step returns the selection action for moving dir tabs from the current one.
// The bool is false when the move would leave the bar without wrapping.
func (t *TabBar) Step(dir int) (router.Action, bool) {
	n := len(t.tabs)
	if n == 0 || dir == 0 {
		return nil, false
	}
	next := t.selected + dir
	if next < 0 || next >= n {
		if !t.wrap {
			return nil, false
		}
		next = ((next % n) + n) % n
	}
	if next == t.selected {
		return nil, false
	}
	return router.IndicatorSelectedAction{Index: next}, true
}

// HandleButton turns L1/R1 presses into selection actions.
func (t *TabBar) HandleButton(button constants.VirtualButton) (router.Action, bool) {
	switch button {
	case constants.VirtualButtonL1:
		return t.Step(-1)
	case constants.VirtualButtonR1:
		return t.Step(1)
	default:
		return nil, false
	}
}

// Update advances the highlight animation by dt seconds. It returns true
// while the bar needs repainting.
func (t *TabBar) Update(dt float32) bool {
	if t.tween == nil {
		return false
	}
	value, finished := t.tween.Update(dt)
	t.highlight = value
	if finished {
		t.highlight = float32(t.selected)
		t.tween = nil
	}
	return true
}

// Render draws the bar into bounds. Labels are skipped when font is nil and
// the L1/R1 hints when hintFont is nil.
func (t *TabBar) Render(renderer *sdl.Renderer, font, hintFont *ttf.Font, bounds sdl.Rect) {
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.TabBarColor.R, theme.TabBarColor.G, theme.TabBarColor.B, theme.TabBarColor.A)
	renderer.FillRect(&bounds)

	n := int32(len(t.tabs))
	if n == 0 {
		return
	}

	if t.textures == nil {
		t.textures = internal.NewTextureCacheWithSize[*sdl.Texture](3*len(t.tabs) + 2)
	}

	if hintFont != nil {
		const hintWidth = 48
		t.renderHint(renderer, hintFont, constants.VirtualButtonL1.GetName(), sdl.Rect{X: bounds.X, Y: bounds.Y, W: hintWidth, H: bounds.H})
		t.renderHint(renderer, hintFont, constants.VirtualButtonR1.GetName(), sdl.Rect{X: bounds.X + bounds.W - hintWidth, Y: bounds.Y, W: hintWidth, H: bounds.H})
		bounds = internal.SymmetricPadding(0, hintWidth).Inset(bounds)
	}
	slot := bounds.W / n

	pill := internal.SymmetricPadding(8, 6).Inset(sdl.Rect{
		X: bounds.X + int32(t.highlight*float32(slot)),
		Y: bounds.Y,
		W: slot,
		H: bounds.H,
	})
	renderer.SetDrawColor(theme.HighlightColor.R, theme.HighlightColor.G, theme.HighlightColor.B, theme.HighlightColor.A)
	renderer.FillRect(&pill)
	renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, theme.AccentColor.A)
	renderer.FillRect(&sdl.Rect{X: pill.X, Y: bounds.Y + bounds.H - 4, W: pill.W, H: 4})

	for i, tab := range t.tabs {
		cell := sdl.Rect{X: bounds.X + int32(i)*slot, Y: bounds.Y, W: slot, H: bounds.H}
		color := theme.TextColor
		if i == t.selected {
			color = theme.HighlightedTextColor
		}

		x := cell.X + cell.W/2
		if tab.Icon != "" {
			if icon := t.iconTexture(renderer, tab.Icon); icon != nil {
				size := constants.DefaultIconSize
				renderer.Copy(icon, nil, &sdl.Rect{X: cell.X + 12, Y: cell.Y + (cell.H-size)/2, W: size, H: size})
				x += size / 2
			}
		}

		if font == nil {
			continue
		}
		label := t.labelTexture(renderer, font, t.localizer.Localize(tab.Label), color)
		if label == nil {
			continue
		}
		_, _, w, h, err := label.Query()
		if err != nil {
			continue
		}
		renderer.Copy(label, nil, &sdl.Rect{X: x - w/2, Y: cell.Y + (cell.H-h)/2, W: w, H: h})
	}
}

func (t *TabBar) renderHint(renderer *sdl.Renderer, font *ttf.Font, text string, cell sdl.Rect) {
	hint := t.labelTexture(renderer, font, text, internal.GetTheme().HintColor)
	if hint == nil {
		return
	}
	if _, _, w, h, err := hint.Query(); err == nil {
		renderer.Copy(hint, nil, &sdl.Rect{X: cell.X + (cell.W-w)/2, Y: cell.Y + (cell.H-h)/2, W: w, H: h})
	}
}

func (t *TabBar) labelTexture(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) *sdl.Texture {
	key := labelKey(text, color)
	if texture, ok := t.textures.Get(key); ok {
		return texture
	}
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to render tab label", "label", text, "error", err)
		return nil
	}
	defer surface.Free()
	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to create tab label texture", "label", text, "error", err)
		return nil
	}
	t.textures.Set(key, texture)
	return texture
}

func (t *TabBar) iconTexture(renderer *sdl.Renderer, path string) *sdl.Texture {
	key := "icon:" + path
	if texture, ok := t.textures.Get(key); ok {
		return texture
	}
	if t.badIcons[path] {
		return nil
	}
	img, err := LoadIcon(path, int(constants.DefaultIconSize))
	if err == nil {
		var texture *sdl.Texture
		if texture, err = iconTexture(renderer, img); err == nil {
			t.textures.Set(key, texture)
			return texture
		}
	}
	if t.badIcons == nil {
		t.badIcons = map[string]bool{}
	}
	t.badIcons[path] = true
	internal.GetInternalLogger().Warn("Tab icon unavailable", "error", err)
	return nil
}

// Destroy releases the cached label and icon textures.
func (t *TabBar) Destroy() {
	if t.textures != nil {
		t.textures.Destroy()
	}
}

func labelKey(text string, c sdl.Color) string {
	return string([]byte{c.R, c.G, c.B, c.A}) + text
}
