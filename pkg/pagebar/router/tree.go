package router

// Tree is the slice of the widget tree the router needs. Paths passed to a
// Tree are absolute: the router's base path joined with a route.
//
// The router never creates or destroys nodes. It only flips visibility on
// nodes that already exist and asks for redraws.
type Tree interface {
	// Find reports whether a node exists at path.
	Find(path Path) bool
	// SetVisible shows or hides the node at path.
	SetVisible(path Path, visible bool)
	// Visible reports whether the node at path is currently shown.
	Visible(path Path) bool
	// Children lists the identifiers of the direct children of path, in order.
	Children(path Path) []string
	// Redraw asks the host to repaint the region rooted at path on its next frame.
	Redraw(path Path)
}
