package metrics

import (
	"context"

	"github.com/osse101/GreenMap_Go/internal/event"
	"github.com/osse101/GreenMap_Go/internal/logger"
)

// EventMetricsCollector turns bus traffic into planting and rejection counters
type EventMetricsCollector struct{}

func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the collector counts
func (e *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.TreePlanted, e.HandleEvent)
	bus.Subscribe(event.TreeRemoved, e.HandleEvent)
	bus.Subscribe(event.ImageRejected, e.HandleEvent)
}

// HandleEvent counts evt. A payload that cannot be read is returned as an
// error to the bus.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.TreePlanted:
		err = countPlanted(evt)
	case event.TreeRemoved:
		TreesRemoved.Inc()
	case event.ImageRejected:
		err = countRejected(evt)
	}

	log := logger.FromContext(ctx)
	if err != nil {
		log.Warn(LogMsgMalformedEvent, "type", evt.Type, "error", err)
		return err
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func countPlanted(evt event.Event) error {
	p, err := event.TreePlantedPayload(evt)
	if err != nil {
		return err
	}
	photo := PhotoNone
	if p.Tree.Image.Exists() {
		photo = PhotoAttached
	}
	TreesPlanted.WithLabelValues(photo).Inc()
	return nil
}

func countRejected(evt event.Event) error {
	p, err := event.ImageRejectedPayload(evt)
	if err != nil {
		return err
	}
	ImagesRejected.WithLabelValues(p.Stage).Inc()
	return nil
}
