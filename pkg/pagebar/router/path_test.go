package router

import "testing"

func TestParsePath(t *testing.T) {
	cases := []struct {
		in   string
		want Path
	}{
		{"bar/home", NewPath("bar", "home")},
		{"/bar//home/", NewPath("bar", "home")},
		{" bar / home ", NewPath("bar", "home")},
		{"", nil},
	}
	for _, tc := range cases {
		if got := ParsePath(tc.in); !got.Equal(tc.want) {
			t.Errorf("ParsePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPathContains(t *testing.T) {
	route := NewPath("body", "bar", "home")
	cases := []struct {
		candidate Path
		want      bool
	}{
		{NewPath("body", "bar", "home"), true},
		{NewPath("body", "bar"), true},
		{NewPath("bar", "home"), true},
		{NewPath("home"), true},
		{NewPath("body"), true},
		{NewPath("bar"), false},
		{NewPath("bar", "body"), false},
		{NewPath("body", "home"), false},
		{NewPath("body", "bar", "home", "extra"), false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := route.Contains(tc.candidate); got != tc.want {
			t.Errorf("Contains(%q) = %v, want %v", tc.candidate, got, tc.want)
		}
	}
}

func TestPathHasSuffix(t *testing.T) {
	p := NewPath("tabs", "home", "detail")
	if !p.HasSuffix(NewPath("home", "detail")) || !p.HasSuffix(nil) {
		t.Fatalf("expected trailing runs to match")
	}
	if p.HasSuffix(NewPath("home")) || p.HasSuffix(NewPath("x", "tabs", "home", "detail")) {
		t.Fatalf("unexpected suffix match")
	}
}

func TestPathDerivationsDoNotAlias(t *testing.T) {
	p := make(Path, 2, 8)
	p[0], p[1] = "a", "b"

	x := p.Join("x")
	y := p.Join("y")
	if x.Last() != "x" || y.Last() != "y" {
		t.Fatalf("Join aliased the backing array: %q %q", x, y)
	}

	parent := x.Parent()
	parent[0] = "z"
	if x[0] != "a" {
		t.Fatalf("Parent aliased its receiver")
	}
}

func TestPathHelpers(t *testing.T) {
	p := NewPath("a", "b", "c")
	if p.Last() != "c" {
		t.Errorf("Last = %q", p.Last())
	}
	if !p.HasPrefix(NewPath("a", "b")) || p.HasPrefix(NewPath("b")) {
		t.Errorf("HasPrefix mismatch")
	}
	if Path(nil).Last() != "" || Path(nil).Parent() != nil {
		t.Errorf("empty path helpers should return zero values")
	}
	if got := NewPath("x").Concat(p).String(); got != "x/a/b/c" {
		t.Errorf("Concat = %q", got)
	}
}

func TestStackLIFO(t *testing.T) {
	s := NewStack()
	if _, ok := s.Pop(); ok {
		t.Fatalf("pop on empty stack should report false")
	}
	s.Push(NewPath("a"), RouteBar)
	s.Push(NewPath("b"), RouteNav)
	s.Push(NewPath("b"), RouteNav)
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	want := []string{"b", "b", "a"}
	for _, w := range want {
		e, ok := s.Pop()
		if !ok || e.Path.Last() != w {
			t.Fatalf("Pop = %q, %v; want %q", e.Path, ok, w)
		}
	}
	if !s.IsEmpty() {
		t.Fatalf("expected empty stack")
	}
}
