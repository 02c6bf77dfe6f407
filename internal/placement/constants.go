package placement

import "time"

// State is where a session is in the placement flow.
type State string

const (
	StateIdle        State = "idle"
	StateDragActive  State = "drag_active"
	StatePendingDrop State = "pending_drop"
	StateFormOpen    State = "form_open"
	StateSubmitting  State = "submitting"
)

// Manager defaults
const (
	DefaultCapacity = 1024
	DefaultTTL      = 30 * time.Minute
)

// Log messages
const (
	LogMsgDragStarted        = "Placement drag started"
	LogMsgDropOutOfBounds    = "Drop outside region discarded"
	LogMsgFormOpened         = "Placement form opened"
	LogMsgImageAttached      = "Photo admitted for placement"
	LogMsgImageRejected      = "Photo rejected for placement"
	LogMsgStaleAdmission     = "Discarding admission result for cancelled placement"
	LogMsgSubmitBlocked      = "Placement submit blocked"
	LogMsgPlacementSaved     = "Placement saved"
	LogMsgPersistFailed      = "Placement could not be saved"
	LogMsgPlacementCancelled = "Placement cancelled"
	LogMsgSessionCreated     = "Placement session created"
	LogMsgSessionEvicted     = "Placement session evicted"
)

const (
	errMsgAdmissionInFlight = "a photo is still being checked"
	errFmtTransition        = "%w: %s from %s"
)
