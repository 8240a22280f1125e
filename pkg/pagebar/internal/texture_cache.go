package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 16

// Destroyable is anything holding GPU memory, usually an *sdl.Texture.
type Destroyable interface {
	Destroy() error
}

// TextureCache keeps rendered tab labels and icons keyed by content.
// The least recently used entry is destroyed when the cache is full.
type TextureCache[T Destroyable] struct {
	textures map[string]T
	order    []string // oldest first
	maxSize  int
}

// LabelCache is the cache used for rendered text and icon textures.
type LabelCache = TextureCache[*sdl.Texture]

func NewTextureCache() *LabelCache {
	return NewTextureCacheWithSize[*sdl.Texture](defaultMaxCacheSize)
}

func NewTextureCacheWithSize[T Destroyable](maxSize int) *TextureCache[T] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache[T]{
		textures: make(map[string]T),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache[T]) Get(key string) (T, bool) {
	texture, exists := c.textures[key]
	if exists {
		c.moveToEnd(key)
	}
	return texture, exists
}

func (c *TextureCache[T]) Set(key string, texture T) {
	if old, exists := c.textures[key]; exists {
		old.Destroy()
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache[T]) Len() int {
	return len(c.order)
}

func (c *TextureCache[T]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache[T]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture.
func (c *TextureCache[T]) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]T)
	c.order = c.order[:0]
}
