package models

// VideoView is one per-video play counter row in the local views database.
// Counters are best-effort display state, not authoritative analytics.
type VideoView struct {
	VideoID string `gorm:"primaryKey" json:"videoId"`
	Views   int64  `json:"views"`
}
