// Package tree provides an in-memory widget arena that satisfies router.Tree.
//
// Nodes live in a flat slice and are addressed by router.Path; parents refer
// to children by index, never by pointer. The arena only tracks identity,
// hierarchy and a visibility flag per node. Drawing is left to the host.
package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/router"
	"go.uber.org/atomic"
)

var (
	// ErrNoParent is returned when adding under a path that does not exist.
	ErrNoParent = errors.New("parent node not found")
	// ErrDuplicateNode is returned when a sibling with the same id exists.
	ErrDuplicateNode = errors.New("node already exists")
	// ErrInvalidID is returned for empty ids or ids containing '/'.
	ErrInvalidID = errors.New("invalid node id")
)

const rootIndex = 0

type node struct {
	id       string
	parent   int
	children []int
	visible  bool
}

// Arena is a retained tree of named nodes with visibility flags.
//
// Structure and visibility must be changed from the UI goroutine only.
// RequestRedraw and Dirty may be called from any goroutine.
type Arena struct {
	nodes   []node
	index   map[string]int
	regions []router.Path
	dirty   atomic.Bool
}

// New creates an arena holding only the root node, addressed by the empty path.
func New() *Arena {
	return &Arena{
		nodes: []node{{parent: -1, visible: true}},
		index: map[string]int{"": rootIndex},
	}
}

// Add creates a child named id under parent and returns its path.
func (a *Arena) Add(parent router.Path, id string, visible bool) (router.Path, error) {
	if id == "" || strings.Contains(id, "/") {
		return nil, fmt.Errorf("tree: add %q: %w", id, ErrInvalidID)
	}
	pi, ok := a.lookup(parent)
	if !ok {
		return nil, fmt.Errorf("tree: add %q under %q: %w", id, parent.String(), ErrNoParent)
	}
	path := parent.Join(id)
	if _, exists := a.index[path.String()]; exists {
		return nil, fmt.Errorf("tree: add %q: %w", path.String(), ErrDuplicateNode)
	}

	a.nodes = append(a.nodes, node{id: id, parent: pi, visible: visible})
	ni := len(a.nodes) - 1
	a.nodes[pi].children = append(a.nodes[pi].children, ni)
	a.index[path.String()] = ni
	return path, nil
}

// MustAdd is Add for static tree declarations; it panics on error.
func (a *Arena) MustAdd(parent router.Path, id string, visible bool) router.Path {
	path, err := a.Add(parent, id, visible)
	if err != nil {
		panic(err)
	}
	return path
}

// Len returns the number of nodes, including the root.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Find reports whether a node exists at path.
func (a *Arena) Find(path router.Path) bool {
	_, ok := a.lookup(path)
	return ok
}

// SetVisible sets the visibility flag of the node at path.
// Unknown paths are ignored.
func (a *Arena) SetVisible(path router.Path, visible bool) {
	if i, ok := a.lookup(path); ok {
		a.nodes[i].visible = visible
	}
}

// Visible reports the node's own visibility flag.
func (a *Arena) Visible(path router.Path) bool {
	i, ok := a.lookup(path)
	return ok && a.nodes[i].visible
}

// Shown reports whether the node and all its ancestors are visible.
func (a *Arena) Shown(path router.Path) bool {
	i, ok := a.lookup(path)
	if !ok {
		return false
	}
	for ; i >= 0; i = a.nodes[i].parent {
		if !a.nodes[i].visible {
			return false
		}
	}
	return true
}

// Children lists the ids of the node's direct children in insertion order.
func (a *Arena) Children(path router.Path) []string {
	i, ok := a.lookup(path)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(a.nodes[i].children))
	for _, ci := range a.nodes[i].children {
		ids = append(ids, a.nodes[ci].id)
	}
	return ids
}

// VisibleChildren lists the ids of direct children whose flag is set.
func (a *Arena) VisibleChildren(path router.Path) []string {
	i, ok := a.lookup(path)
	if !ok {
		return nil
	}
	var ids []string
	for _, ci := range a.nodes[i].children {
		if a.nodes[ci].visible {
			ids = append(ids, a.nodes[ci].id)
		}
	}
	return ids
}

// Redraw records region as needing a repaint on the next frame.
func (a *Arena) Redraw(region router.Path) {
	for _, r := range a.regions {
		if r.Equal(region) {
			a.dirty.Store(true)
			return
		}
	}
	a.regions = append(a.regions, region.Clone())
	a.dirty.Store(true)
}

// RequestRedraw marks the whole tree dirty.
func (a *Arena) RequestRedraw() {
	a.dirty.Store(true)
}

// Dirty reports whether a redraw is pending.
func (a *Arena) Dirty() bool {
	return a.dirty.Load()
}

// TakeRedraw clears the pending redraw and returns the regions requested
// since the last call. The bool is false when nothing was pending.
func (a *Arena) TakeRedraw() ([]router.Path, bool) {
	if !a.dirty.Swap(false) {
		return nil, false
	}
	regions := a.regions
	a.regions = nil
	return regions, true
}

func (a *Arena) lookup(path router.Path) (int, bool) {
	i, ok := a.index[path.String()]
	return i, ok
}
