package library

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultSeed returns the tracks that are registered when no seed file is
// configured.
func DefaultSeed() []Track {
	return []Track{
		{Title: "Believer", Artist: "Imagine Dragons", MediaPath: "/static/music/believer.mp3", CoverPath: "/static/images/believer.jpg"},
		{Title: "Faded", Artist: "Alan Walker", MediaPath: "/static/music/faded.mp3", CoverPath: "/static/images/faded.jpg"},
		{Title: "Alone", Artist: "Marshmello", MediaPath: "/static/music/alone.mp3", CoverPath: "/static/images/alone.jpg"},
		{Title: "Soduni Gokulas", Artist: "Shantanu Ghule", MediaPath: "/static/music/krishna.mp3", CoverPath: "/static/images/krishna.jpg"},
	}
}

type seedFile struct {
	Tracks []Track `yaml:"tracks" toml:"tracks"`
}

// LoadSeed reads a list of tracks from a YAML or TOML file. The format is
// determined by the file extension.
//
// Missing titles and artists are derived from the media path.
func LoadSeed(filename string) ([]Track, error) {
	var seed seedFile
	switch strings.ToLower(path.Ext(filename)) {
	case ".yaml", ".yml":
		fd, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer fd.Close()

		d := yaml.NewDecoder(fd)
		d.KnownFields(true)
		if err := d.Decode(&seed); err != nil {
			return nil, fmt.Errorf("could not decode seed %q: %v", filename, err)
		}
	case ".toml":
		md, err := toml.DecodeFile(filename, &seed)
		if err != nil {
			return nil, fmt.Errorf("could not decode seed %q: %v", filename, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("could not decode seed %q: unknown fields %v", filename, undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported seed format: %q", filename)
	}

	for i := range seed.Tracks {
		InterpolateMissingFields(&seed.Tracks[i])
		if seed.Tracks[i].Title == "" {
			return nil, fmt.Errorf("seed %q: track %d has no title or media path", filename, i)
		}
	}
	return seed.Tracks, nil
}

