package sse

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/GreenMap_Go/internal/logger"
)

// Handler streams hub events to one browser
//
//	@Summary		Live map events
//	@Description	Server-sent events for trees planted and removed. Optional "types" filter, comma separated. Reconnecting clients resume from Last-Event-ID.
//	@Tags			trees
//	@Produce		text/event-stream
//	@Param			types			query	string	false	"event types to receive"
//	@Param			Last-Event-ID	header	string	false	"last sequence id seen"
//	@Success		200
//	@Router			/api/v1/events [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		flusher, ok := w.(http.Flusher)
		if !ok {
			log.Error(LogMsgStreamingNotSupported)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")

		eventTypes := parseTypes(r.URL.Query().Get(QueryParamTypes))
		lastID := r.Header.Get(HeaderLastEventID)
		if lastID == "" {
			lastID = r.URL.Query().Get(QueryParamLastEventID)
		}

		client := hub.RegisterSince(eventTypes, lastID)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"last_event_id", lastID)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(b []byte) bool {
			if _, err := w.Write(b); err != nil {
				log.Debug(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}
		sendEvent := func(ev Event) bool {
			msg, err := FormatSSEMessage(ev)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err, "event_type", ev.Type)
				return true
			}
			return send(msg)
		}

		hello := Event{
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   ConnectedPayload{ClientID: client.ID, Filters: eventTypes},
		}
		if !send([]byte(fmt.Sprintf("retry: %d\n\n", RetryMillis))) || !sendEvent(hello) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-client.EventChannel:
				if !ok || !sendEvent(ev) {
					return
				}
			case <-ticker.C:
				// comment lines keep proxies from closing an idle stream
				if !send([]byte(": keepalive\n\n")) {
					return
				}
			}
		}
	}
}

func parseTypes(param string) []string {
	var out []string
	for _, t := range strings.Split(param, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
