package player

import "smartplayer/src/library"

// PlaybackEvent is emitted when the current track changes.
type PlaybackEvent struct {
	Track library.Track
	// FromQueue is set when the track was taken from the up-next queue.
	FromQueue bool
}

// QueueEvent is emitted when the up-next queue changes.
type QueueEvent struct {
	Titles []string
}

// LikedEvent is emitted when the liked collection changes.
type LikedEvent struct {
	Count int
}

// PlayCountEvent is emitted when the play count of a track was reset.
type PlayCountEvent struct {
	Title     string
	PlayCount int
}
