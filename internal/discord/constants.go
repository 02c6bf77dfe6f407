package discord

import "time"

// Announcer settings
const (
	AnnounceQueueSize   = 64
	AnnounceTimeout     = 10 * time.Second
	AnnouncerUsername   = "GreenMap"
	EmbedTitleFormat    = "🌳 %s was planted"
	EmbedDescription    = "A new tree is on the map."
	EmbedFieldLocation  = "Location"
	EmbedFieldLocFormat = "%.2f, %.2f"
	EmbedFieldPhoto     = "Photo"
	EmbedPhotoYes       = "yes"
	EmbedPhotoNo        = "no"
	EmbedFooterFormat   = "Tree #%d"
)

// Log messages
const (
	LogMsgAnnouncerStarted = "Discord announcer started"
	LogMsgAnnounceQueued   = "Queued Discord announcement"
	LogMsgAnnounceDropped  = "Discord announcement queue full, dropping"
	LogMsgAnnounceFailed   = "Failed to send Discord announcement"
	LogMsgAnnounceSent     = "Sent Discord announcement"
	LogMsgInvalidPayload   = "Unexpected tree.planted payload"
)
