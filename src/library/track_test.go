package library

import (
	"testing"
)

func TestInterpolateMissingFields(t *testing.T) {
	// When the artist or title are already set, the track should be left as is.
	track := Track{MediaPath: "/static/music/Wrong Artist - Wrong Title.mp3", Artist: "Some Artist", Title: "Some Title"}
	InterpolateMissingFields(&track)
	if track.Artist != "Some Artist" || track.Title != "Some Title" {
		t.Fatalf("Unexpected artist and title: %q - %q", track.Artist, track.Title)
	}

	// <artist> - <title> in the title
	track = Track{Title: "Some Artist - Some Title"}
	InterpolateMissingFields(&track)
	if track.Artist != "Some Artist" || track.Title != "Some Title" {
		t.Fatalf("Unexpected artist and title: %q - %q", track.Artist, track.Title)
	}

	// <artist> - <title> in the filename
	track = Track{MediaPath: "/static/music/Some Artist - Some Title.mp3"}
	InterpolateMissingFields(&track)
	if track.Artist != "Some Artist" || track.Title != "Some Title" {
		t.Fatalf("Unexpected artist and title: %q - %q", track.Artist, track.Title)
	}
	track = Track{MediaPath: "/static/music/01. Some Artist - Some Title.mp3"}
	InterpolateMissingFields(&track)
	if track.Artist != "Some Artist" || track.Title != "Some Title" {
		t.Fatalf("Unexpected artist and title: %q - %q", track.Artist, track.Title)
	}
	track = Track{MediaPath: "/static/music/01 - Some Artist - Some Title.mp3"}
	InterpolateMissingFields(&track)
	if track.Artist != "Some Artist" || track.Title != "Some Title" {
		t.Fatalf("Unexpected artist and title: %q - %q", track.Artist, track.Title)
	}

	// A known title is kept when only the artist is derived from the filename.
	track = Track{Title: "Kept", MediaPath: "/static/music/Some Artist - Other.mp3"}
	InterpolateMissingFields(&track)
	if track.Artist != "Some Artist" || track.Title != "Kept" {
		t.Fatalf("Unexpected artist and title: %q - %q", track.Artist, track.Title)
	}

	// Use the filename as title as fallback.
	track = Track{MediaPath: "/static/music/krishna.mp3"}
	InterpolateMissingFields(&track)
	if track.Artist != "" || track.Title != "krishna" {
		t.Fatalf("Unexpected artist and title: %q - %q", track.Artist, track.Title)
	}
}

func TestTrackPlay(t *testing.T) {
	track := Track{Title: "Faded"}
	track.Play()
	track.Play()
	if track.PlayCount != 2 {
		t.Fatalf("Unexpected play count: %d", track.PlayCount)
	}
}
