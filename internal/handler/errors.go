package handler

import "fmt"

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// Request errors
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid tree id"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingImageField     = "Missing image file field"
	ErrMsgUploadTooLarge        = "Upload is too large"
	ErrMsgInvalidImageData      = "Image must be a base64 data URL"

	// Service errors shown to users
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgTreeNotFound        = "Tree not found"
	ErrMsgSessionNotFound     = "Placement session not found or expired"
	ErrMsgNameRequired        = "Please give your tree a name"
	ErrMsgImageRequired       = "Please attach a photo of your tree"
	ErrMsgInvalidColor        = "Color must be a #rrggbb hex value"
	ErrMsgOutOfBounds         = "That spot is outside the map region"
	ErrMsgInvalidTransition   = "That action is not available right now"
	ErrMsgPlacementCancelled  = "This placement was cancelled"
	ErrMsgPersistenceFailed   = "Could not save your tree. Please try again."
	ErrMsgInvalidImage        = "Invalid or corrupt image file."
	ErrMsgStoreUnavailable    = "Tree store is unreachable"
	ErrMsgRenderFailed        = "Failed to render map"
)

// Success messages for API responses
const (
	MsgTreeDeleted        = "Tree deleted"
	MsgPlacementCancelled = "Placement cancelled"
	MsgDropOutside        = "Drop was outside the map region"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgServiceError    = "Request failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgTreeCreated     = "Tree created via API"
	LogMsgTreeDeleted     = "Tree deleted via API"
	LogMsgImageAdmitted   = "Image admitted via API"
)

// Form fields and content types
const (
	FormFieldImage  = "image"
	ContentTypePNG  = "image/png"
	ContentTypeJSON = "application/json"
	multipartMemory = 1 << 20
)

func queryError(name string) string {
	return fmt.Sprintf(ErrMsgInvalidQueryParam, name)
}
