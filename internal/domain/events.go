package domain

// Event types follow the pattern <entity>.<action>
const (
	// EventTypeTreePlanted is published after a tree is persisted
	EventTypeTreePlanted = "tree.planted"

	// EventTypeTreeRemoved is published after a tree is deleted
	EventTypeTreeRemoved = "tree.removed"

	// EventTypeImageRejected is published when the admission pipeline rejects a photo
	EventTypeImageRejected = "image.rejected"
)

// TreePlantedPayload is carried by tree.planted events. The image is never included.
type TreePlantedPayload struct {
	Tree      Tree   `json:"tree"`
	SessionID string `json:"session_id,omitempty"`
}

// TreeRemovedPayload is carried by tree.removed events.
type TreeRemovedPayload struct {
	TreeID int64 `json:"tree_id"`
}

// ImageRejectedPayload is carried by image.rejected events.
type ImageRejectedPayload struct {
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}
