package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Point is a position in world space (0..WorldWidth, 0..WorldHeight).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tree is a planted point on the map.
type Tree struct {
	ID        int64     `json:"id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Image     ImageRef  `json:"-"`
	Timestamp string    `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

// Position returns the tree location in world space.
func (t Tree) Position() Point {
	return Point{X: t.X, Y: t.Y}
}

// MarshalJSON flattens the image variant into image_state and image fields.
func (t Tree) MarshalJSON() ([]byte, error) {
	type alias Tree
	out := struct {
		alias
		ImageState ImageState `json:"image_state"`
		Image      string     `json:"image,omitempty"`
	}{alias: alias(t), ImageState: t.Image.State()}
	if p, ok := t.Image.Payload(); ok {
		out.Image = p.DataURL()
	}
	return json.Marshal(out)
}

// ImageState tags which variant an ImageRef holds.
type ImageState string

const (
	ImageAbsent    ImageState = "absent"
	ImageNotLoaded ImageState = "not_loaded"
	ImageLoaded    ImageState = "loaded"
)

// ImageRef distinguishes a tree without a photo from one whose photo exists
// in the store but has not been fetched yet.
type ImageRef struct {
	state   ImageState
	payload *ImagePayload
}

// NoImage is the Absent variant.
func NoImage() ImageRef { return ImageRef{state: ImageAbsent} }

// ImageNotFetched is the NotLoaded variant.
func ImageNotFetched() ImageRef { return ImageRef{state: ImageNotLoaded} }

// ImageOf is the Loaded variant.
func ImageOf(p ImagePayload) ImageRef { return ImageRef{state: ImageLoaded, payload: &p} }

// State returns the variant tag. The zero value is Absent.
func (r ImageRef) State() ImageState {
	if r.state == "" {
		return ImageAbsent
	}
	return r.state
}

// Payload returns the image when the variant is Loaded.
func (r ImageRef) Payload() (ImagePayload, bool) {
	if r.state != ImageLoaded || r.payload == nil {
		return ImagePayload{}, false
	}
	return *r.payload, true
}

// Exists reports whether the tree has a photo, fetched or not.
func (r ImageRef) Exists() bool {
	return r.State() != ImageAbsent
}

// ImagePayload is an encoded raster that passed admission.
type ImagePayload struct {
	Data       []byte `json:"-"`
	MIME       string `json:"mime"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	OverBudget bool   `json:"over_budget,omitempty"`
}

// Size is the encoded byte length.
func (p ImagePayload) Size() int { return len(p.Data) }

// DataURL is the persisted text form of the payload.
func (p ImagePayload) DataURL() string {
	return "data:" + p.MIME + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// ParseDataURL decodes a base64 data URL back into a payload. Dimensions are
// not part of the URL and stay zero.
func ParseDataURL(s string) (ImagePayload, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return ImagePayload{}, fmt.Errorf("%w: missing data: prefix", ErrInvalidImage)
	}
	mime, encoded, ok := strings.Cut(rest, ";base64,")
	if !ok || mime == "" {
		return ImagePayload{}, fmt.Errorf("%w: expected base64 data URL", ErrInvalidImage)
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ImagePayload{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return ImagePayload{Data: data, MIME: mime}, nil
}

// PendingPlacement is an accepted drop awaiting the form.
type PendingPlacement struct {
	DropPoint     Point `json:"drop_point"`
	ProvisionalID int64 `json:"provisional_id"`
}

// Viewport is the zoom and pan applied when drawing world space onto the canvas.
type Viewport struct {
	Zoom float64 `json:"zoom"`
	PanX float64 `json:"pan_x"`
	PanY float64 `json:"pan_y"`
}

// InitialViewport is the viewport a session starts with.
func InitialViewport() Viewport {
	return Viewport{Zoom: 1}
}

// TreeDraft is a validated tree that has not been stored yet.
type TreeDraft struct {
	X         float64
	Y         float64
	Name      string
	Color     string
	Timestamp string
	Image     *ImagePayload
}
