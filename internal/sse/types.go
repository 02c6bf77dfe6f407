package sse

import "github.com/osse101/GreenMap_Go/internal/domain"

// TreePlantedPayload is sent to map clients when a tree appears. Photos are
// never streamed; clients fetch them by id.
type TreePlantedPayload struct {
	Tree domain.Tree `json:"tree"`
}

// TreeRemovedPayload is sent when a tree is deleted
type TreeRemovedPayload struct {
	TreeID int64 `json:"tree_id"`
}

// ConnectedPayload opens every stream
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
}
