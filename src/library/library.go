package library

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a title is not known to the registry.
	ErrNotFound = errors.New("song not found")

	// ErrDuplicateTitle is returned when a title is registered twice.
	ErrDuplicateTitle = errors.New("duplicate title")
)

// A Registry maps titles to tracks.
//
// Lookups are O(1). Tracks are never removed and All returns them in the
// order they were registered.
type Registry struct {
	byTitle map[string]*Track
	order   []*Track
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byTitle: map[string]*Track{}}
}

// Register stores a copy of the specified track with a zeroed play count and
// returns the registered instance.
//
// Registering a title that already exists fails with ErrDuplicateTitle.
func (reg *Registry) Register(track Track) (*Track, error) {
	if track.Title == "" {
		return nil, fmt.Errorf("invalid track: empty title (media %q)", track.MediaPath)
	}
	if _, ok := reg.byTitle[track.Title]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateTitle, track.Title)
	}
	track.PlayCount = 0
	tr := &track
	reg.byTitle[tr.Title] = tr
	reg.order = append(reg.order, tr)
	return tr, nil
}

// Lookup finds a track by its title.
func (reg *Registry) Lookup(title string) (*Track, error) {
	if tr, ok := reg.byTitle[title]; ok {
		return tr, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
}

// All returns all tracks in registration order.
func (reg *Registry) All() []*Track {
	tracks := make([]*Track, len(reg.order))
	copy(tracks, reg.order)
	return tracks
}

func (reg *Registry) Len() int {
	return len(reg.order)
}

func (reg *Registry) String() string {
	return fmt.Sprintf("Registry{len=%d}", len(reg.order))
}
