package jukebox

import (
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"smartplayer/src/library"
	"smartplayer/src/player"
	"smartplayer/src/util"
)

var (
	// ErrNotFound is returned from functions that take a title which is not
	// known to the library.
	ErrNotFound = library.ErrNotFound

	// ErrEndOfPlaylist is returned by Next when the queue is empty and the
	// playlist has no next track.
	ErrEndOfPlaylist = errors.New("end of playlist")

	// ErrNoPrevious is returned by Prev when there is no track before the
	// current one.
	ErrNoPrevious = errors.New("no previous song")
)

// Playback is the result of an operation that changed the current track.
type Playback struct {
	Message string
	Track   library.Track
}

// Jukebox owns the playback state: the track registry, the playlist and its
// cursor, the up-next queue and the liked collection.
//
// All methods are safe for concurrent use. Tracks are returned by value.
type Jukebox struct {
	util.Emitter

	lock     sync.Mutex
	registry *library.Registry
	playlist *player.Playlist
	queue    player.Queue
	liked    player.Liked

	trendingSize int
}

// NewJukebox creates a jukebox with the specified tracks registered in order.
//
// An error is returned if a title occurs more than once.
func NewJukebox(tracks []library.Track, trendingSize int) (*Jukebox, error) {
	if trendingSize <= 0 {
		trendingSize = player.DefaultTrendingSize
	}
	jb := &Jukebox{
		registry:     library.NewRegistry(),
		playlist:     player.NewPlaylist(),
		trendingSize: trendingSize,
	}
	for _, tr := range tracks {
		if err := jb.Register(tr); err != nil {
			return nil, err
		}
	}
	return jb, nil
}

// Register adds a track to the library and appends it to the playlist.
func (jb *Jukebox) Register(track library.Track) error {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	tr, err := jb.registry.Register(track)
	if err != nil {
		return err
	}
	jb.playlist.Append(tr)
	log.WithField("title", tr.Title).Debugf("Registered %v", tr)
	return nil
}

// Tracks returns all tracks in playlist order.
func (jb *Jukebox) Tracks() []library.Track {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	return copyTracks(jb.playlist.Tracks())
}

// Current returns the track under the playlist cursor.
func (jb *Jukebox) Current() (library.Track, bool) {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	if cur := jb.playlist.Current(); cur != nil {
		return *cur, true
	}
	return library.Track{}, false
}

// Play moves the cursor to the track with the specified title and counts a
// play.
func (jb *Jukebox) Play(title string) (*Playback, error) {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	tr, err := jb.registry.Lookup(title)
	if err != nil {
		return nil, err
	}
	if _, err := jb.playlist.SetCurrent(title); err != nil {
		// Every registered track has a playlist entry.
		return nil, fmt.Errorf("playlist out of sync with library: %v", err)
	}
	return jb.play(tr, false, fmt.Sprintf("Playing %s", tr.Title)), nil
}

// Next plays the next track. Tracks in the up-next queue take priority over
// the playlist. A track taken from the queue also becomes the playlist
// cursor, so later calls continue from there.
func (jb *Jukebox) Next() (*Playback, error) {
	jb.lock.Lock()
	defer jb.lock.Unlock()

	if tr, err := jb.queue.Dequeue(); err == nil {
		if _, err := jb.playlist.SetCurrent(tr.Title); err != nil {
			log.WithField("title", tr.Title).Debugf("Queued track is not in the playlist")
		}
		jb.Emit(player.QueueEvent{Titles: jb.queue.Snapshot()})
		return jb.play(tr, true, fmt.Sprintf("Now playing %s (from queue)", tr.Title)), nil
	}

	tr, err := jb.playlist.Advance()
	if errors.Is(err, player.ErrNoNext) {
		return nil, ErrEndOfPlaylist
	} else if err != nil {
		return nil, err
	}
	return jb.play(tr, false, fmt.Sprintf("Now playing %s", tr.Title)), nil
}

// Prev plays the track before the current one in the playlist. The queue is
// not consulted.
func (jb *Jukebox) Prev() (*Playback, error) {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	tr, err := jb.playlist.Retreat()
	if errors.Is(err, player.ErrNoPrevious) {
		return nil, ErrNoPrevious
	} else if err != nil {
		return nil, err
	}
	return jb.play(tr, false, fmt.Sprintf("Now playing %s", tr.Title)), nil
}

// play counts a play of the track. The lock must be held.
func (jb *Jukebox) play(tr *library.Track, fromQueue bool, message string) *Playback {
	tr.Play()
	jb.Emit(player.PlaybackEvent{Track: *tr, FromQueue: fromQueue})
	log.WithField("title", tr.Title).Infof("%s (%d plays)", message, tr.PlayCount)
	return &Playback{Message: message, Track: *tr}
}

// Enqueue adds the track with the specified title to the up-next queue and
// returns the titles in the queue.
func (jb *Jukebox) Enqueue(title string) ([]string, error) {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	tr, err := jb.registry.Lookup(title)
	if err != nil {
		return nil, err
	}
	jb.queue.Enqueue(tr)
	snapshot := jb.queue.Snapshot()
	jb.Emit(player.QueueEvent{Titles: snapshot})
	return snapshot, nil
}

// Queue returns the titles in the up-next queue, front to back.
func (jb *Jukebox) Queue() []string {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	return jb.queue.Snapshot()
}

// Like marks the track as liked, moving it to the top if it was already
// liked. The number of liked tracks is returned.
func (jb *Jukebox) Like(title string) (int, error) {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	tr, err := jb.registry.Lookup(title)
	if err != nil {
		return 0, err
	}
	count := jb.liked.Like(tr)
	jb.Emit(player.LikedEvent{Count: count})
	return count, nil
}

// Unlike removes the track from the liked collection.
func (jb *Jukebox) Unlike(title string) error {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	if err := jb.liked.Unlike(title); err != nil {
		return err
	}
	jb.Emit(player.LikedEvent{Count: jb.liked.Len()})
	return nil
}

// Liked returns the liked tracks, most recently liked first.
func (jb *Jukebox) Liked() []library.Track {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	return copyTracks(jb.liked.List())
}

// Trending returns the k most played tracks. A k of zero or less uses the
// configured default.
func (jb *Jukebox) Trending(k int) []library.Track {
	if k <= 0 {
		k = jb.trendingSize
	}
	jb.lock.Lock()
	defer jb.lock.Unlock()
	return copyTracks(player.Trending(jb.playlist.Tracks(), k))
}

// ResetPlayCount sets the play count of the track to zero.
func (jb *Jukebox) ResetPlayCount(title string) error {
	jb.lock.Lock()
	defer jb.lock.Unlock()
	tr, err := jb.registry.Lookup(title)
	if err != nil {
		return err
	}
	tr.PlayCount = 0
	jb.Emit(player.PlayCountEvent{Title: tr.Title, PlayCount: 0})
	return nil
}

func copyTracks(tracks []*library.Track) []library.Track {
	out := make([]library.Track, len(tracks))
	for i, tr := range tracks {
		out[i] = *tr
	}
	return out
}
