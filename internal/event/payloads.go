package event

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// ErrUnexpectedPayload is returned when an event carries a payload of the wrong shape
var ErrUnexpectedPayload = errors.New("unexpected event payload")

// TreePlantedPayload extracts the planted tree from a tree.planted event
func TreePlantedPayload(e Event) (domain.TreePlantedPayload, error) {
	return payloadAs[domain.TreePlantedPayload](e, TreePlanted)
}

// TreeRemovedPayload extracts the removed id from a tree.removed event
func TreeRemovedPayload(e Event) (domain.TreeRemovedPayload, error) {
	return payloadAs[domain.TreeRemovedPayload](e, TreeRemoved)
}

// ImageRejectedPayload extracts the stage and reason from an image.rejected event
func ImageRejectedPayload(e Event) (domain.ImageRejectedPayload, error) {
	return payloadAs[domain.ImageRejectedPayload](e, ImageRejected)
}

// payloadAs accepts the struct published in-process, a pointer to it, or the
// generic map left behind by a JSON round trip (dead-letter replay).
func payloadAs[T any](e Event, want Type) (T, error) {
	var zero T
	if e.Type != want {
		return zero, fmt.Errorf("%w: got %s, want %s", ErrUnexpectedPayload, e.Type, want)
	}

	switch v := e.Payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, fmt.Errorf("%w: nil %s payload", ErrUnexpectedPayload, want)
		}
		return *v, nil
	case map[string]interface{}, json.RawMessage:
		data, err := json.Marshal(v)
		if err != nil {
			return zero, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
		}
		var out T
		if err := json.Unmarshal(data, &out); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
		}
		return out, nil
	default:
		return zero, fmt.Errorf("%w: %T for %s", ErrUnexpectedPayload, e.Payload, want)
	}
}
