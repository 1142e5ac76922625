package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"smartplayer/src/jukebox"
	"smartplayer/src/player"
)

// InitRouter attaches all API routes to the specified router.
func InitRouter(r chi.Router, jukebox *jukebox.Jukebox) {
	api := API{jukebox: jukebox}
	r.Group(func(r chi.Router) {
		r.Use(jsonCtx)
		r.Get("/playlist", api.playlist)
		r.Post("/play/{title}", api.play)
		r.Get("/next", api.next)
		r.Get("/prev", api.prev)
		r.Get("/queue", api.queueGet)
		r.Post("/queue/{title}", api.queueAdd)
		r.Get("/trending", api.trending)
		r.Post("/like/{title}", api.like)
		r.Post("/unlike/{title}", api.unlike)
		r.Get("/liked", api.liked)
		r.Post("/resetplays/{title}", api.resetPlays)
	})
	r.Get("/events", api.events)
}

// API contains the state that is accessible over the REST API.
type API struct {
	jukebox *jukebox.Jukebox
}

// WriteError writes an error to the client as a JSON object with a human
// readable message.
//
// Unknown titles and the ends of the playlist are reported as 404 Not Found.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, player.ErrNotLiked):
		status, message = http.StatusNotFound, "Song not in liked list"
	case errors.Is(err, jukebox.ErrNotFound):
		status, message = http.StatusNotFound, "Song not found"
	case errors.Is(err, jukebox.ErrEndOfPlaylist):
		status, message = http.StatusNotFound, "End of playlist"
	case errors.Is(err, jukebox.ErrNoPrevious):
		status, message = http.StatusNotFound, "No previous song"
	}
	if status >= 500 {
		log.Errorf("Error serving %s: %v", r.RemoteAddr, err)
	} else {
		log.Debugf("Error serving %s: %v", r.RemoteAddr, err)
	}

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": message,
		"error":   err.Error(),
	})
}

// titleParam returns the title from the URL. Chi matches on the raw path
// when it is set, in which case the parameter is still escaped.
func titleParam(r *http.Request) string {
	title := chi.URLParam(r, "title")
	if r.URL.RawPath == "" {
		return title
	}
	if unescaped, err := url.PathUnescape(title); err == nil {
		return unescaped
	}
	return title
}

func jsonCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
