package player

import (
	"errors"

	"github.com/samber/lo"

	"smartplayer/src/library"
)

// ErrQueueEmpty is returned by Dequeue when there is nothing up next.
var ErrQueueEmpty = errors.New("queue is empty")

// A Queue holds the tracks that are to be played before the playlist
// continues. The same track may be queued more than once.
type Queue struct {
	tracks []*library.Track
}

// Enqueue adds the track to the back of the queue.
func (q *Queue) Enqueue(track *library.Track) {
	q.tracks = append(q.tracks, track)
}

// Dequeue removes and returns the track at the front of the queue.
func (q *Queue) Dequeue() (*library.Track, error) {
	if len(q.tracks) == 0 {
		return nil, ErrQueueEmpty
	}
	track := q.tracks[0]
	q.tracks[0] = nil
	q.tracks = q.tracks[1:]
	if len(q.tracks) == 0 {
		q.tracks = nil
	}
	return track, nil
}

// Snapshot returns the titles in the queue, front to back.
func (q *Queue) Snapshot() []string {
	return lo.Map(q.tracks, func(tr *library.Track, _ int) string {
		return tr.Title
	})
}

func (q *Queue) Len() int {
	return len(q.tracks)
}
