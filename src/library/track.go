package library

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

var (
	interpArtistTitleInTitle    = regexp.MustCompile(`(.+)\s+-\s+(.+)`)
	interpArtistTitleInFilename = regexp.MustCompile(`(?:(?:\d+\.\s+)|(?:\d+\s+-\s+))?([^/]+?)\s+-\s+([^/]+)\.\w+$`)
	interpFilename              = regexp.MustCompile(`^(?:.*/)?(.+)\.\w+$`)
)

// Track holds all information associated with a single piece of music.
//
// Tracks are owned by a Registry. Other collections keep pointers to the
// registered instance so that the play count is shared.
type Track struct {
	Title     string `json:"title" yaml:"title" toml:"title"`
	Artist    string `json:"artist" yaml:"artist" toml:"artist"`
	MediaPath string `json:"media_path" yaml:"media_path" toml:"media_path"`
	CoverPath string `json:"cover_path" yaml:"cover_path" toml:"cover_path"`
	PlayCount int    `json:"play_count" yaml:"-" toml:"-"`
}

// Play increments the play counter.
func (track *Track) Play() {
	track.PlayCount++
}

func (track Track) String() string {
	return fmt.Sprintf("%s - %s (%d plays)", track.Artist, track.Title, track.PlayCount)
}

// InterpolateMissingFields extracts the artist and title from other track
// information if they are unavailable and applies them to the specified track.
//
// Seed lists use this so entries may be declared with just a media path.
func InterpolateMissingFields(track *Track) {
	if track.Artist != "" && track.Title != "" {
		return
	}

	// Attempt to find an "<artist> - <title>" string in the track title.
	if track.Artist == "" && track.Title != "" {
		if match := interpArtistTitleInTitle.FindStringSubmatch(track.Title); match != nil {
			track.Artist, track.Title = match[1], match[2]
			return
		}
	}

	// Look for the "<artist> - <title>" pattern in the filename.
	if track.Artist == "" || track.Title == "" {
		if match := interpArtistTitleInFilename.FindStringSubmatch(track.MediaPath); match != nil {
			if track.Artist == "" {
				track.Artist = match[1]
			}
			if track.Title == "" {
				track.Title = match[2]
			}
			return
		}
	}

	// Still nothing? Just use the filename.
	if track.Title == "" {
		if match := interpFilename.FindStringSubmatch(track.MediaPath); match != nil {
			track.Title = strings.TrimSpace(match[1])
		} else if track.MediaPath != "" {
			track.Title = path.Base(track.MediaPath)
		}
	}
}
