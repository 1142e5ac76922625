package player

import (
	"github.com/emirpasic/gods/trees/binaryheap"

	"smartplayer/src/library"
)

// DefaultTrendingSize is the number of tracks returned by the trending query
// when not configured otherwise.
const DefaultTrendingSize = 3

type ranked struct {
	track *library.Track
	order int
}

// worseFirst orders the heap so that its root is the lowest ranked track: the
// lowest play count, and among equal counts the one seen last.
func worseFirst(a, b interface{}) int {
	ra, rb := a.(ranked), b.(ranked)
	switch {
	case ra.track.PlayCount < rb.track.PlayCount:
		return -1
	case ra.track.PlayCount > rb.track.PlayCount:
		return 1
	case ra.order > rb.order:
		return -1
	case ra.order < rb.order:
		return 1
	}
	return 0
}

// Trending selects the k tracks with the highest play count without sorting
// the whole input. Tracks with equal counts keep their input order.
func Trending(tracks []*library.Track, k int) []*library.Track {
	if k <= 0 || len(tracks) == 0 {
		return []*library.Track{}
	}

	heap := binaryheap.NewWith(worseFirst)
	for i, tr := range tracks {
		if heap.Size() < k {
			heap.Push(ranked{track: tr, order: i})
			continue
		}
		root, _ := heap.Peek()
		// Later tracks never win a tie, so only a strictly higher count
		// displaces the root.
		if tr.PlayCount > root.(ranked).track.PlayCount {
			heap.Pop()
			heap.Push(ranked{track: tr, order: i})
		}
	}

	top := make([]*library.Track, heap.Size())
	for i := len(top) - 1; i >= 0; i-- {
		v, _ := heap.Pop()
		top[i] = v.(ranked).track
	}
	return top
}
