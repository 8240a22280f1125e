package router

// Entry is a single page in the navigation history.
type Entry struct {
	Path Path
	Kind RouteKind
}

// Stack records the pages navigated away from, most recent last.
// It has no capacity limit and never deduplicates: visiting the same page
// twice pushes it twice.
type Stack struct {
	entries []Entry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Entry, 0),
	}
}

// Push appends an entry. Called when navigating forward away from a page.
func (s *Stack) Push(path Path, kind RouteKind) {
	s.entries = append(s.entries, Entry{
		Path: path.Clone(),
		Kind: kind,
	})
}

// Pop removes and returns the most recently pushed entry.
// The bool is false if the stack is empty.
func (s *Stack) Pop() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return entry, true
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the stack, oldest first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
