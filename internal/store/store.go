package store

import (
	"fmt"
	"sync"
)

// ColorAssignments maps every region to its color string.
type ColorAssignments map[Region]string

// Store holds the color of every region and the currently selected region.
// Observers subscribe per field: a color subscriber for region X is only called when X's
// color changes, and selection subscribers only when the selection changes. Writes that
// leave a value unchanged notify nobody. Callbacks run after the lock is released.
type Store struct {
	mu        sync.Mutex
	colors    ColorAssignments
	selected  Region
	hasSel    bool
	nextID    uint64
	colorSubs map[Region][]colorSub
	anySubs   []colorSub
	selSubs   []selectionSub
}

type colorSub struct {
	id uint64
	fn func(Region, string)
}

type selectionSub struct {
	id uint64
	fn func(Region, bool)
}

// New returns a store with all eight regions set to DefaultColor and no selection.
func New() *Store {
	s := &Store{
		colors:    make(ColorAssignments, len(Regions)),
		colorSubs: make(map[Region][]colorSub, len(Regions)),
	}
	for _, r := range Regions {
		s.colors[r] = DefaultColor
	}
	return s
}

// Color returns the current color of r. Unknown regions return "".
func (s *Store) Color(r Region) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colors[r]
}

// Colors returns a copy of all assignments.
func (s *Store) Colors() ColorAssignments {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(ColorAssignments, len(s.colors))
	for k, v := range s.colors {
		out[k] = v
	}
	return out
}

// SetColor stores value as the color of r. Any string is accepted as a value.
func (s *Store) SetColor(r Region, value string) error {
	if !r.Valid() {
		return fmt.Errorf("store: set color %q: %w", r, ErrUnknownRegion)
	}
	s.mu.Lock()
	if s.colors[r] == value {
		s.mu.Unlock()
		return nil
	}
	s.colors[r] = value
	subs := append(append([]colorSub(nil), s.colorSubs[r]...), s.anySubs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(r, value)
	}
	return nil
}

// Selection returns the selected region and whether one is selected.
func (s *Store) Selection() (Region, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.hasSel
}

// Select makes r the selected region.
func (s *Store) Select(r Region) error {
	if !r.Valid() {
		return fmt.Errorf("store: select %q: %w", r, ErrUnknownRegion)
	}
	s.setSelection(r, true)
	return nil
}

// ClearSelection leaves no region selected.
func (s *Store) ClearSelection() {
	s.setSelection("", false)
}

func (s *Store) setSelection(r Region, ok bool) {
	s.mu.Lock()
	if s.hasSel == ok && s.selected == r {
		s.mu.Unlock()
		return
	}
	s.selected, s.hasSel = r, ok
	subs := append([]selectionSub(nil), s.selSubs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(r, ok)
	}
}

// SetSelectedColor writes value under the selected region. It reports false and
// changes nothing when no region is selected.
func (s *Store) SetSelectedColor(value string) bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	_ = s.SetColor(r, value)
	return true
}

// SelectedColor returns the color of the selected region, or false when none is selected.
func (s *Store) SelectedColor() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasSel {
		return "", false
	}
	return s.colors[s.selected], true
}

// Subscription detaches an observer when cancelled.
type Subscription struct {
	cancel func()
}

// Cancel stops further notifications. Calling it more than once is harmless.
func (sub Subscription) Cancel() {
	if sub.cancel != nil {
		sub.cancel()
	}
}

// OnColor calls fn whenever the color of r changes.
func (s *Store) OnColor(r Region, fn func(Region, string)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.colorSubs[r] = append(s.colorSubs[r], colorSub{id: id, fn: fn})
	return Subscription{cancel: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.colorSubs[r] = removeColorSub(s.colorSubs[r], id)
	}}
}

// OnAnyColor calls fn whenever any region's color changes.
func (s *Store) OnAnyColor(fn func(Region, string)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.anySubs = append(s.anySubs, colorSub{id: id, fn: fn})
	return Subscription{cancel: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.anySubs = removeColorSub(s.anySubs, id)
	}}
}

// OnSelection calls fn whenever the selection changes. ok is false when the selection was cleared.
func (s *Store) OnSelection(fn func(r Region, ok bool)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.selSubs = append(s.selSubs, selectionSub{id: id, fn: fn})
	return Subscription{cancel: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.selSubs {
			if sub.id == id {
				s.selSubs = append(s.selSubs[:i:i], s.selSubs[i+1:]...)
				return
			}
		}
	}}
}

func removeColorSub(subs []colorSub, id uint64) []colorSub {
	for i, sub := range subs {
		if sub.id == id {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}
