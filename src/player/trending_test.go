package player

import (
	"reflect"
	"testing"
)

func TestTrending(t *testing.T) {
	tracks := makeTracks("Believer", "Faded", "Alone", "Krishna")
	for i, count := range []int{2, 5, 0, 1} {
		tracks[i].PlayCount = count
	}

	top := titles(Trending(tracks, 3))
	if !reflect.DeepEqual(top, []string{"Faded", "Believer", "Krishna"}) {
		t.Fatalf("Unexpected trending tracks: %v", top)
	}

	top = titles(Trending(tracks, 10))
	if !reflect.DeepEqual(top, []string{"Faded", "Believer", "Krishna", "Alone"}) {
		t.Fatalf("Unexpected trending tracks: %v", top)
	}
}

func TestTrendingTies(t *testing.T) {
	tracks := makeTracks("A", "B", "C", "D", "E")
	for i, count := range []int{1, 3, 1, 3, 1} {
		tracks[i].PlayCount = count
	}
	top := titles(Trending(tracks, 3))
	if !reflect.DeepEqual(top, []string{"B", "D", "A"}) {
		t.Fatalf("Unexpected trending tracks: %v", top)
	}

	for _, tr := range tracks {
		tr.PlayCount = 0
	}
	top = titles(Trending(tracks, DefaultTrendingSize))
	if !reflect.DeepEqual(top, []string{"A", "B", "C"}) {
		t.Fatalf("Ties should keep registration order: %v", top)
	}
}

func TestTrendingEmpty(t *testing.T) {
	if top := Trending(nil, 3); len(top) != 0 {
		t.Fatalf("Unexpected trending tracks: %v", titles(top))
	}
	if top := Trending(makeTracks("A"), 0); len(top) != 0 {
		t.Fatalf("Unexpected trending tracks: %v", titles(top))
	}
}
