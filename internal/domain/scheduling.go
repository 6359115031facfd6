package domain

import "time"

// ScheduleRequest sets a future publish time on a content item
type ScheduleRequest struct {
	ContentType string    `json:"content_type" binding:"required"`
	ContentID   uint64    `json:"content_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// UnscheduleRequest reverts a scheduled item to draft
type UnscheduleRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	ContentID   uint64 `json:"content_id" binding:"required"`
}

// UpcomingItem is one row of the dashboard's upcoming-schedule projection
type UpcomingItem struct {
	ID          uint64      `json:"id"`
	Title       string      `json:"title"`
	Type        ContentType `json:"type"`
	Status      string      `json:"status"`
	ScheduledAt time.Time   `json:"scheduled_at"`
}

// DueContent groups due items per content type for the batch publisher
type DueContent struct {
	Posts    []*Post    `json:"posts"`
	Pages    []*Page    `json:"pages"`
	Products []*Product `json:"products"`
}

// PublishResult aggregates a batch publish run. Per-type failures land in
// Errors; sibling types are still attempted.
type PublishResult struct {
	Posts    int64    `json:"posts"`
	Pages    int64    `json:"pages"`
	Products int64    `json:"products"`
	Errors   []string `json:"errors"`
}
