// Package selection holds the "which ornament is open" state.
//
// A [Selection] is a plain value owned by whoever renders the tree. It is
// changed only through [Selection.Select], [Selection.Clear] and
// [Selection.Toggle]; renderers read it through [Selection.IsSelected].
// There is no package-level state.
package selection

// Selection is at most one selected item id. The zero value selects
// nothing.
type Selection struct {
	id  string
	set bool
}

// Of returns a selection holding id, or an empty selection if id is "".
func Of(id string) Selection {
	var s Selection
	s.Select(id)
	return s
}

// Select makes id the selected item. Selecting "" clears the selection.
func (s *Selection) Select(id string) {
	if id == "" {
		s.Clear()
		return
	}
	s.id, s.set = id, true
}

// Clear deselects any item.
func (s *Selection) Clear() {
	s.id, s.set = "", false
}

// Toggle selects id, or clears the selection if id is already selected.
// It reports whether id is selected afterwards.
func (s *Selection) Toggle(id string) bool {
	if s.IsSelected(id) {
		s.Clear()
		return false
	}
	s.Select(id)
	return s.set
}

// ID returns the selected id and whether anything is selected.
func (s Selection) ID() (string, bool) {
	return s.id, s.set
}

// IsSelected reports whether id is the selected item.
func (s Selection) IsSelected(id string) bool {
	return s.set && s.id == id
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool { return !s.set }
