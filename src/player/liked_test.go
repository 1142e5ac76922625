package player

import (
	"errors"
	"testing"

	"smartplayer/src/library"
)

func titles(tracks []*library.Track) []string {
	out := make([]string, len(tracks))
	for i, tr := range tracks {
		out[i] = tr.Title
	}
	return out
}

func TestLikedOrder(t *testing.T) {
	tracks := makeTracks("A", "B", "C")
	var lk Liked
	for i, tr := range tracks {
		if n := lk.Like(tr); n != i+1 {
			t.Fatalf("Unexpected liked count: %d", n)
		}
	}
	list := titles(lk.List())
	for i, expected := range []string{"C", "B", "A"} {
		if list[i] != expected {
			t.Fatalf("Unexpected liked track at %d: %v", i, list)
		}
	}
}

func TestLikedPromote(t *testing.T) {
	tracks := makeTracks("A", "B", "C")
	var lk Liked
	lk.Like(tracks[0])
	lk.Like(tracks[1])
	lk.Like(tracks[2])

	if n := lk.Like(tracks[0]); n != 3 {
		t.Fatalf("Liking twice should not change the count: %d", n)
	}
	list := titles(lk.List())
	for i, expected := range []string{"A", "C", "B"} {
		if list[i] != expected {
			t.Fatalf("Unexpected liked track at %d: %v", i, list)
		}
	}
}

func TestLikedUnlike(t *testing.T) {
	tracks := makeTracks("A", "B")
	var lk Liked
	lk.Like(tracks[0])
	lk.Like(tracks[1])

	if err := lk.Unlike("A"); err != nil {
		t.Fatal(err)
	}
	if lk.Len() != 1 || lk.List()[0].Title != "B" {
		t.Fatalf("Unexpected liked list: %v", titles(lk.List()))
	}
	err := lk.Unlike("A")
	if !errors.Is(err, ErrNotLiked) {
		t.Fatalf("Expected ErrNotLiked, got %v", err)
	}
	if !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("ErrNotLiked should be a not found error: %v", err)
	}
}
