package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/event"
)

// translate turns a bus event into the payload map clients receive
type translate func(event.Event) (payload interface{}, treeID int64, err error)

// Subscriber forwards tree events from the bus to every connected map
type Subscriber struct {
	hub    *Hub
	bus    event.Bus
	routes map[event.Type]route
}

type route struct {
	streamType string
	translate  translate
}

func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
		routes: map[event.Type]route{
			event.TreePlanted: {EventTypeTreePlanted, plantedForStream},
			event.TreeRemoved: {EventTypeTreeRemoved, removedForStream},
		},
	}
}

// Subscribe hooks every routed event type onto the bus
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(s.routes))
	for t := range s.routes {
		s.bus.Subscribe(t, s.forward)
		types = append(types, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", types)
}

// forward never fails the publish; a bad payload only costs the live update
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	rt, ok := s.routes[evt.Type]
	if !ok {
		return nil
	}
	payload, treeID, err := rt.translate(evt)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(rt.streamType, payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", rt.streamType, "tree_id", treeID)
	return nil
}

func plantedForStream(evt event.Event) (interface{}, int64, error) {
	p, err := event.TreePlantedPayload(evt)
	if err != nil {
		return nil, 0, err
	}
	tree := p.Tree
	if tree.Image.Exists() {
		tree.Image = domain.ImageNotFetched()
	}
	return TreePlantedPayload{Tree: tree}, tree.ID, nil
}

func removedForStream(evt event.Event) (interface{}, int64, error) {
	p, err := event.TreeRemovedPayload(evt)
	if err != nil {
		return nil, 0, err
	}
	return TreeRemovedPayload(p), p.TreeID, nil
}
