package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"smartplayer/src/jukebox"
	"smartplayer/src/library"
	"smartplayer/src/player"
	"smartplayer/src/util/eventsource"
)

type jsonTrack struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	MediaPath string `json:"media_path"`
	CoverPath string `json:"cover_path"`
	PlayCount int    `json:"play_count"`
}

func toJSONTrack(tr library.Track) jsonTrack {
	return jsonTrack{
		Title:     tr.Title,
		Artist:    tr.Artist,
		MediaPath: tr.MediaPath,
		CoverPath: tr.CoverPath,
		PlayCount: tr.PlayCount,
	}
}

func jsonTracks(tracks []library.Track) []jsonTrack {
	return lo.Map(tracks, func(tr library.Track, _ int) jsonTrack {
		return toJSONTrack(tr)
	})
}

func jsonPlayback(pb *jukebox.Playback) interface{} {
	return struct {
		Message string `json:"message"`
		jsonTrack
	}{
		Message:   pb.Message,
		jsonTrack: toJSONTrack(pb.Track),
	}
}

func (api *API) playlist(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(jsonTracks(api.jukebox.Tracks()))
}

func (api *API) play(w http.ResponseWriter, r *http.Request) {
	pb, err := api.jukebox.Play(titleParam(r))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	json.NewEncoder(w).Encode(jsonPlayback(pb))
}

func (api *API) next(w http.ResponseWriter, r *http.Request) {
	pb, err := api.jukebox.Next()
	if err != nil {
		WriteError(w, r, err)
		return
	}
	json.NewEncoder(w).Encode(jsonPlayback(pb))
}

func (api *API) prev(w http.ResponseWriter, r *http.Request) {
	pb, err := api.jukebox.Prev()
	if err != nil {
		WriteError(w, r, err)
		return
	}
	json.NewEncoder(w).Encode(jsonPlayback(pb))
}

func (api *API) queueGet(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]interface{}{
		"queue": api.jukebox.Queue(),
	})
}

func (api *API) queueAdd(w http.ResponseWriter, r *http.Request) {
	title := titleParam(r)
	queue, err := api.jukebox.Enqueue(title)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": fmt.Sprintf("'%s' added to queue", title),
		"queue":   queue,
	})
}

func (api *API) trending(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(jsonTracks(api.jukebox.Trending(0)))
}

func (api *API) like(w http.ResponseWriter, r *http.Request) {
	title := titleParam(r)
	count, err := api.jukebox.Like(title)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     fmt.Sprintf("'%s' liked", title),
		"liked_count": count,
	})
}

func (api *API) unlike(w http.ResponseWriter, r *http.Request) {
	title := titleParam(r)
	if err := api.jukebox.Unlike(title); err != nil {
		WriteError(w, r, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": fmt.Sprintf("'%s' removed from liked songs", title),
	})
}

func (api *API) liked(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(jsonTracks(api.jukebox.Liked()))
}

func (api *API) resetPlays(w http.ResponseWriter, r *http.Request) {
	title := titleParam(r)
	if err := api.jukebox.ResetPlayCount(title); err != nil {
		WriteError(w, r, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": fmt.Sprintf("Play count for '%s' reset to 0.", title),
	})
}

func (api *API) events(w http.ResponseWriter, r *http.Request) {
	es, err := eventsource.Begin(w, r)
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	ctx := es.Context()
	listener := api.jukebox.Events().Listen(ctx)

	if cur, ok := api.jukebox.Current(); ok {
		err = es.EventJSON("playback", map[string]interface{}{"track": toJSONTrack(cur), "from_queue": false})
	}
	if err == nil {
		err = es.EventJSON("queue", map[string]interface{}{"queue": api.jukebox.Queue()})
	}
	if err == nil {
		err = es.EventJSON("liked", map[string]interface{}{"liked_count": len(api.jukebox.Liked())})
	}

	for err == nil {
		var event interface{}
		select {
		case event = <-listener:
		case <-ctx.Done():
			log.Debugf("Event stream to %s closed", r.RemoteAddr)
			return
		}

		switch t := event.(type) {
		case player.PlaybackEvent:
			err = es.EventJSON("playback", map[string]interface{}{"track": toJSONTrack(t.Track), "from_queue": t.FromQueue})
		case player.QueueEvent:
			err = es.EventJSON("queue", map[string]interface{}{"queue": t.Titles})
		case player.LikedEvent:
			err = es.EventJSON("liked", map[string]interface{}{"liked_count": t.Count})
		case player.PlayCountEvent:
			err = es.EventJSON("playcount", map[string]interface{}{"title": t.Title, "play_count": t.PlayCount})
		default:
			log.Debugf("Unmapped event %#v", event)
		}
	}
	log.Debugf("Event stream to %s failed: %v", r.RemoteAddr, err)
}
