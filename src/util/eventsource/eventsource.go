package eventsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type EventSource struct {
	lock  sync.Mutex
	out   io.Writer
	flush func()
	ctx   context.Context
}

// Begin starts a Server-Sent Events stream on the response.
//
// The connection is hijacked when possible so server write timeouts do not
// apply to the stream. Otherwise the response is flushed after every event.
//
// The context of the returned EventSource is done once the client has gone
// away.
func Begin(w http.ResponseWriter, r *http.Request) (*EventSource, error) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")

	if hj, ok := w.(http.Hijacker); ok {
		w.Header().Set("Transfer-Encoding", "identity")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		conn, buf, err := hj.Hijack()
		if err != nil {
			return nil, fmt.Errorf("could not start event source: %v", err)
		}
		if err := buf.Flush(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("could not start event source: %v", err)
		}
		conn.SetDeadline(time.Time{})

		// The server no longer watches a hijacked connection. Clients do not
		// send anything on an event stream, so a finished read means the
		// client has disconnected.
		ctx, cancel := context.WithCancel(r.Context())
		go func() {
			io.Copy(io.Discard, buf.Reader)
			cancel()
		}()
		go func() {
			<-ctx.Done()
			conn.Close()
		}()
		return &EventSource{out: conn, flush: func() {}, ctx: ctx}, nil
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("could not start event source: %T can not be flushed", w)
	}
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	return &EventSource{out: w, flush: flusher.Flush, ctx: r.Context()}, nil
}

// Context returns a context that is done when the stream is closed.
func (es *EventSource) Context() context.Context {
	return es.ctx
}

// Event writes an event with a unique ID to the stream.
func (es *EventSource) Event(event, body string) error {
	es.lock.Lock()
	defer es.lock.Unlock()
	if _, err := fmt.Fprintf(es.out, "id: %s\nevent: %s\ndata: %s\n\n", uuid.NewString(), event, body); err != nil {
		return err
	}
	es.flush()
	return nil
}

func (es *EventSource) EventJSON(event string, body interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		log.Errorf("Could not marshal event %q: %v", event, err)
		return err
	}
	return es.Event(event, string(b))
}
