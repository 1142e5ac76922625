package player

import (
	"errors"
	"fmt"

	"smartplayer/src/library"
)

var (
	// ErrEmpty is returned when playback is started on an empty playlist.
	ErrEmpty = errors.New("playlist is empty")

	// ErrNoNext is returned when the cursor can not advance.
	ErrNoNext = errors.New("no next track")

	// ErrNoPrevious is returned when the cursor can not retreat.
	ErrNoPrevious = errors.New("no previous track")
)

const none = -1

type entry struct {
	track      *library.Track
	prev, next int
}

// A Playlist is an ordered sequence of tracks with a cursor pointing at the
// track that is currently playing.
//
// Entries are stored in a slice and linked by index. The head has no previous
// entry, the tail has no next entry and there is no current entry until
// playback is started.
type Playlist struct {
	entries []entry
	head    int
	tail    int
	current int
}

// NewPlaylist creates an empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{head: none, tail: none, current: none}
}

// Append links the track after the current tail. The cursor is not moved.
func (pl *Playlist) Append(track *library.Track) {
	index := len(pl.entries)
	pl.entries = append(pl.entries, entry{track: track, prev: pl.tail, next: none})
	if pl.tail == none {
		pl.head = index
	} else {
		pl.entries[pl.tail].next = index
	}
	pl.tail = index
}

// Find returns the index of the first entry with the specified title, walking
// from the head.
func (pl *Playlist) Find(title string) (int, bool) {
	for i := pl.head; i != none; i = pl.entries[i].next {
		if pl.entries[i].track.Title == title {
			return i, true
		}
	}
	return none, false
}

// SetCurrent moves the cursor to the track with the specified title. The
// cursor is left unchanged if no such track exists.
func (pl *Playlist) SetCurrent(title string) (*library.Track, error) {
	index, ok := pl.Find(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not in the playlist", library.ErrNotFound, title)
	}
	pl.current = index
	return pl.entries[index].track, nil
}

// PlayFirst moves the cursor to the head.
func (pl *Playlist) PlayFirst() (*library.Track, error) {
	if pl.head == none {
		pl.current = none
		return nil, ErrEmpty
	}
	pl.current = pl.head
	return pl.entries[pl.head].track, nil
}

// Advance moves the cursor to the next entry.
func (pl *Playlist) Advance() (*library.Track, error) {
	if pl.current == none || pl.entries[pl.current].next == none {
		return nil, ErrNoNext
	}
	pl.current = pl.entries[pl.current].next
	return pl.entries[pl.current].track, nil
}

// Retreat moves the cursor to the previous entry.
func (pl *Playlist) Retreat() (*library.Track, error) {
	if pl.current == none || pl.entries[pl.current].prev == none {
		return nil, ErrNoPrevious
	}
	pl.current = pl.entries[pl.current].prev
	return pl.entries[pl.current].track, nil
}

// Current returns the track under the cursor or nil if playback has not
// started.
func (pl *Playlist) Current() *library.Track {
	if pl.current == none {
		return nil
	}
	return pl.entries[pl.current].track
}

// Tracks returns all tracks in traversal order.
func (pl *Playlist) Tracks() []*library.Track {
	tracks := make([]*library.Track, 0, len(pl.entries))
	for i := pl.head; i != none; i = pl.entries[i].next {
		tracks = append(tracks, pl.entries[i].track)
	}
	return tracks
}

func (pl *Playlist) Len() int {
	return len(pl.entries)
}

func (pl *Playlist) String() string {
	if cur := pl.Current(); cur != nil {
		return fmt.Sprintf("Playlist{len=%d, current=%q}", len(pl.entries), cur.Title)
	}
	return fmt.Sprintf("Playlist{len=%d}", len(pl.entries))
}
