// Package nav holds the bounded, cyclic counters that drive keyboard
// navigation: row, tab and palette selections plus the app lifecycle.
package nav

// Selection is an index into a list of count items. Next and Previous wrap
// around; with an empty list the index stays at 0.
type Selection struct {
	index int
	count int
}

// NewSelection creates a selection over count items starting at 0
func NewSelection(count int) Selection {
	return Selection{count: max(0, count)}
}

// Index returns the selected position
func (s Selection) Index() int {
	return s.index
}

// Count returns the number of selectable items
func (s Selection) Count() int {
	return s.count
}

// Empty reports whether there is nothing to select
func (s Selection) Empty() bool {
	return s.count == 0
}

// Next moves forward, wrapping from the last item to the first
func (s *Selection) Next() {
	if s.count == 0 {
		return
	}
	s.index = (s.index + 1) % s.count
}

// Previous moves backward, wrapping from the first item to the last
func (s *Selection) Previous() {
	if s.count == 0 {
		return
	}
	s.index = (s.index - 1 + s.count) % s.count
}

// Resize changes the item count after a reload, clamping the index
func (s *Selection) Resize(count int) {
	s.count = max(0, count)
	if s.index >= s.count {
		s.index = max(0, s.count-1)
	}
}
