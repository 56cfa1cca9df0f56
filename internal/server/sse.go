package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// reconnectDelayMS is the retry hint sent to EventSource clients
const reconnectDelayMS = 2000

// eventStream writes document version events as Server-Sent Events. Each
// event carries the session version as its id so a reconnecting browser
// reports the last version it saw in Last-Event-ID.
type eventStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func newEventStream(w http.ResponseWriter) (*eventStream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")

	if _, err := fmt.Fprintf(w, "retry: %d\n\n", reconnectDelayMS); err != nil {
		return nil, err
	}
	flusher.Flush()
	return &eventStream{w: w, flusher: flusher}, nil
}

// send writes one event with {"version": version} as its data
func (s *eventStream) send(event string, version uint64) error {
	data, err := json.Marshal(versionPayload(version))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", version, event, data); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}
