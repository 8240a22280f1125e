package router

import "strings"

// Path addresses a node in the widget tree as an ordered list of identifiers,
// relative to whatever root the caller is working from.
//
// Paths are treated as immutable values. Every method that derives a new path
// returns a fresh slice, so a Path can be stored and shared without copying.
type Path []string

// NewPath builds a Path from the given identifiers.
func NewPath(ids ...string) Path {
	p := make(Path, len(ids))
	copy(p, ids)
	return p
}

// ParsePath splits a slash separated string ("bar/home") into a Path.
// Empty segments are dropped, so "/bar//home/" parses the same as "bar/home".
func ParsePath(s string) Path {
	var p Path
	for _, seg := range strings.Split(s, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		p = append(p, seg)
	}
	return p
}

// IsEmpty reports whether the path has no identifiers.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Equal reports sequence equality.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is a leading run of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}

// HasSuffix reports whether suffix is a trailing run of p.
func (p Path) HasSuffix(suffix Path) bool {
	if len(suffix) > len(p) {
		return false
	}
	return p[len(p)-len(suffix):].Equal(suffix)
}

// Contains reports whether candidate addresses p: it is equal to p, a
// prefix of p, or the trailing identifiers of p (a nested page by its own
// id). Runs in the middle of p do not match. An empty candidate is never
// contained.
func (p Path) Contains(candidate Path) bool {
	if len(candidate) == 0 {
		return false
	}
	return p.HasPrefix(candidate) || p.HasSuffix(candidate)
}

// Last returns the final identifier, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Parent returns the path without its final identifier.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1].Clone()
}

// Join returns a new path with ids appended.
func (p Path) Join(ids ...string) Path {
	out := make(Path, 0, len(p)+len(ids))
	out = append(out, p...)
	return append(out, ids...)
}

// Concat returns a new path with other appended.
func (p Path) Concat(other Path) Path {
	return p.Join(other...)
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

func (p Path) String() string {
	return strings.Join(p, "/")
}

func clonePaths(paths []Path) []Path {
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		out = append(out, p.Clone())
	}
	return out
}
