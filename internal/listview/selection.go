package listview

import (
	"sort"
	"sync"
)

// TriState summarises how many ids of a group are selected. It drives the
// bulk-select checkbox: unchecked, indeterminate or checked.
type TriState int

const (
	// SelectedNone means no id of the group is selected, or the group is empty.
	SelectedNone TriState = iota
	// SelectedSome means at least one but not every id is selected.
	SelectedSome
	// SelectedAll means every id of a non-empty group is selected.
	SelectedAll
)

// String returns "none", "some" or "all".
func (t TriState) String() string {
	switch t {
	case SelectedSome:
		return "some"
	case SelectedAll:
		return "all"
	default:
		return "none"
	}
}

// MarshalText encodes the state by name for JSON and YAML output.
func (t TriState) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Selection is the set of selected record ids. It is independent of any query
// state. Each method applies its change under one lock, so a bulk operation is
// never observed half done.
type Selection struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewSelection returns a selection holding ids.
func NewSelection(ids ...string) *Selection {
	s := &Selection{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// SelectNone clears the selection.
func (s *Selection) SelectNone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{})
}

// SelectAllIn adds ids to the selection. Existing entries are kept, so
// "select page" followed by "select all" is a union.
func (s *Selection) SelectAllIn(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Toggle adds id when included is true and removes it otherwise.
func (s *Selection) Toggle(id string, included bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if included {
		s.ids[id] = struct{}{}
		return
	}
	delete(s.ids, id)
}

// IsSelected reports whether id is selected.
func (s *Selection) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// CountSelectedWithin counts the distinct ids of the list that are selected.
func (s *Selection) CountSelectedWithin(ids []string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count, _ := s.countWithinLocked(ids)
	return count
}

// State derives the tri-state for a group of visible ids.
func (s *Selection) State(ids []string) TriState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count, unique := s.countWithinLocked(ids)
	switch {
	case unique > 0 && count == unique:
		return SelectedAll
	case count > 0:
		return SelectedSome
	default:
		return SelectedNone
	}
}

// countWithinLocked returns the selected and total number of distinct ids.
func (s *Selection) countWithinLocked(ids []string) (int, int) {
	seen := make(map[string]struct{}, len(ids))
	count := 0
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := s.ids[id]; ok {
			count++
		}
	}
	return count, len(seen)
}

// Retain drops every selected id that is not in source and returns how many
// were dropped. Pass the unfiltered record ids: records hidden by a filter stay
// selected.
func (s *Selection) Retain(source []string) int {
	keep := make(map[string]struct{}, len(source))
	for _, id := range source {
		keep[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
			pruned++
		}
	}
	return pruned
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// IDs returns the selected ids in sorted order.
func (s *Selection) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
