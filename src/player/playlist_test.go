package player

import (
	"errors"
	"testing"

	"smartplayer/src/library"
)

func makeTracks(titles ...string) []*library.Track {
	tracks := make([]*library.Track, len(titles))
	for i, title := range titles {
		tracks[i] = &library.Track{Title: title, Artist: "Artist " + title}
	}
	return tracks
}

func makePlaylist(tracks []*library.Track) *Playlist {
	pl := NewPlaylist()
	for _, tr := range tracks {
		pl.Append(tr)
	}
	return pl
}

func TestPlaylistOrder(t *testing.T) {
	tracks := makeTracks("A", "B", "C", "D")
	pl := makePlaylist(tracks)

	if pl.Len() != len(tracks) {
		t.Fatalf("Unexpected length: %d != %d", pl.Len(), len(tracks))
	}
	for i, tr := range pl.Tracks() {
		if tr != tracks[i] {
			t.Fatalf("Unexpected track at %d: %q != %q", i, tr.Title, tracks[i].Title)
		}
	}
	if pl.Current() != nil {
		t.Fatalf("Appending should not start playback")
	}
}

func TestPlaylistTraversal(t *testing.T) {
	tracks := makeTracks("A", "B", "C")
	pl := makePlaylist(tracks)

	tr, err := pl.PlayFirst()
	if err != nil {
		t.Fatal(err)
	}
	visited := []*library.Track{tr}
	for {
		tr, err := pl.Advance()
		if errors.Is(err, ErrNoNext) {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		visited = append(visited, tr)
	}
	if len(visited) != len(tracks) {
		t.Fatalf("Unexpected number of visited tracks: %d", len(visited))
	}
	for i, tr := range visited {
		if tr != tracks[i] {
			t.Fatalf("Unexpected track at %d: %q", i, tr.Title)
		}
	}

	// The end of the playlist is sticky.
	for i := 0; i < 3; i++ {
		if _, err := pl.Advance(); !errors.Is(err, ErrNoNext) {
			t.Fatalf("Expected ErrNoNext, got %v", err)
		}
		if pl.Current() != tracks[2] {
			t.Fatalf("Cursor moved at the end of the playlist")
		}
	}

	// Until the cursor is reset.
	if _, err := pl.PlayFirst(); err != nil {
		t.Fatal(err)
	}
	if tr, err := pl.Advance(); err != nil {
		t.Fatal(err)
	} else if tr != tracks[1] {
		t.Fatalf("Unexpected track: %q", tr.Title)
	}
}

func TestPlaylistRetreat(t *testing.T) {
	tracks := makeTracks("A", "B", "C")
	pl := makePlaylist(tracks)

	if _, err := pl.Retreat(); !errors.Is(err, ErrNoPrevious) {
		t.Fatalf("Expected ErrNoPrevious without a current track, got %v", err)
	}
	if _, err := pl.SetCurrent("C"); err != nil {
		t.Fatal(err)
	}
	if tr, err := pl.Retreat(); err != nil {
		t.Fatal(err)
	} else if tr != tracks[1] {
		t.Fatalf("Unexpected track: %q", tr.Title)
	}
	if tr, err := pl.Retreat(); err != nil {
		t.Fatal(err)
	} else if tr != tracks[0] {
		t.Fatalf("Unexpected track: %q", tr.Title)
	}
	if _, err := pl.Retreat(); !errors.Is(err, ErrNoPrevious) {
		t.Fatalf("Expected ErrNoPrevious at the head, got %v", err)
	}
	if pl.Current() != tracks[0] {
		t.Fatalf("Cursor moved at the head of the playlist")
	}
}

func TestPlaylistNoCurrent(t *testing.T) {
	pl := makePlaylist(makeTracks("A", "B"))
	if _, err := pl.Advance(); !errors.Is(err, ErrNoNext) {
		t.Fatalf("Expected ErrNoNext without a current track, got %v", err)
	}
	if pl.Current() != nil {
		t.Fatalf("Advance should not start playback")
	}
}

func TestPlaylistSetCurrent(t *testing.T) {
	tracks := makeTracks("A", "B", "C")
	pl := makePlaylist(tracks)

	if tr, err := pl.SetCurrent("B"); err != nil {
		t.Fatal(err)
	} else if tr != tracks[1] || pl.Current() != tracks[1] {
		t.Fatalf("Unexpected current track: %v", pl.Current())
	}

	if _, err := pl.SetCurrent("Z"); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if pl.Current() != tracks[1] {
		t.Fatalf("Cursor moved after a failed lookup")
	}

	if i, ok := pl.Find("C"); !ok || i != 2 {
		t.Fatalf("Unexpected find result: %d, %v", i, ok)
	}
}

func TestPlaylistEmpty(t *testing.T) {
	pl := NewPlaylist()
	if _, err := pl.PlayFirst(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Expected ErrEmpty, got %v", err)
	}
	if _, err := pl.Advance(); !errors.Is(err, ErrNoNext) {
		t.Fatalf("Expected ErrNoNext, got %v", err)
	}
	if _, err := pl.Retreat(); !errors.Is(err, ErrNoPrevious) {
		t.Fatalf("Expected ErrNoPrevious, got %v", err)
	}
	if len(pl.Tracks()) != 0 {
		t.Fatalf("Unexpected tracks in an empty playlist")
	}
}
