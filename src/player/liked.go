package player

import (
	"fmt"

	"github.com/samber/lo"

	"smartplayer/src/library"
)

// ErrNotLiked is returned when unliking a title that is not in the collection.
var ErrNotLiked = fmt.Errorf("%w: not in liked list", library.ErrNotFound)

// Liked is a stack of favourite tracks. Each title is present at most once;
// liking a track again moves it to the top instead of adding a duplicate.
type Liked struct {
	// Most recently liked last.
	tracks []*library.Track
}

// Like pushes the track on top of the stack, removing any earlier entry with
// the same title. The new number of liked tracks is returned.
func (lk *Liked) Like(track *library.Track) int {
	lk.remove(track.Title)
	lk.tracks = append(lk.tracks, track)
	return len(lk.tracks)
}

// Unlike removes the track with the specified title.
func (lk *Liked) Unlike(title string) error {
	if !lk.remove(title) {
		return fmt.Errorf("%w: %q", ErrNotLiked, title)
	}
	return nil
}

// List returns the liked tracks, most recently liked first.
func (lk *Liked) List() []*library.Track {
	tracks := make([]*library.Track, len(lk.tracks))
	for i, tr := range lk.tracks {
		tracks[len(tracks)-1-i] = tr
	}
	return tracks
}

func (lk *Liked) Len() int {
	return len(lk.tracks)
}

func (lk *Liked) find(title string) (*library.Track, int, bool) {
	return lo.FindIndexOf(lk.tracks, func(tr *library.Track) bool {
		return tr.Title == title
	})
}

func (lk *Liked) remove(title string) bool {
	_, index, ok := lk.find(title)
	if !ok {
		return false
	}
	lk.tracks = append(lk.tracks[:index], lk.tracks[index+1:]...)
	return true
}
