package jukebox

import (
	"testing"

	"smartplayer/src/library"
)

// NewTestJukebox creates a jukebox with the default seed registered.
func NewTestJukebox(t *testing.T) *Jukebox {
	jb, err := NewJukebox(library.DefaultSeed(), 0)
	if err != nil {
		t.Fatal(err)
	}
	return jb
}
