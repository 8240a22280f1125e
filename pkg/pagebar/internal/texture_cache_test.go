package internal

import "testing"

type fakeTexture struct {
	name      string
	destroyed *[]string
}

func (f fakeTexture) Destroy() error {
	*f.destroyed = append(*f.destroyed, f.name)
	return nil
}

func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	var destroyed []string
	c := NewTextureCacheWithSize[fakeTexture](2)
	c.Set("a", fakeTexture{"a", &destroyed})
	c.Set("b", fakeTexture{"b", &destroyed})

	if _, ok := c.Get("a"); !ok {
		t.Fatalf("a should be cached")
	}
	c.Set("c", fakeTexture{"c", &destroyed})

	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have been evicted")
	}
	if len(destroyed) != 1 || destroyed[0] != "b" {
		t.Fatalf("destroyed = %v, want [b]", destroyed)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestTextureCacheReplaceDestroysOld(t *testing.T) {
	var destroyed []string
	c := NewTextureCacheWithSize[fakeTexture](4)
	c.Set("a", fakeTexture{"a1", &destroyed})
	c.Set("a", fakeTexture{"a2", &destroyed})
	got, _ := c.Get("a")
	if got.name != "a2" || len(destroyed) != 1 || destroyed[0] != "a1" {
		t.Fatalf("got %s, destroyed %v", got.name, destroyed)
	}

	c.Destroy()
	if c.Len() != 0 || len(destroyed) != 2 {
		t.Fatalf("Destroy left %d entries, destroyed %v", c.Len(), destroyed)
	}
}
