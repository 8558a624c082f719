package dto

import "time"

// ============================
// Derived read views
// ============================

// EventDetailDTO is one event row with its lookup names joined in, so callers
// don't have to stitch categories/venues/users themselves.
type EventDetailDTO struct {
	EventID       uint       `json:"event_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	StartDatetime *time.Time `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime"`
	Capacity      *int       `json:"capacity"`
	Status        *string    `json:"status"`
	CategoryName  *string    `json:"category_name"`
	VenueName     *string    `json:"venue_name"`
	VenueLocation *string    `json:"venue_location"`
	OrganizerName *string    `json:"organizer_name"`
	OrganizerDept *string    `json:"organizer_dept"`
}

// EventSummaryDTO carries the registration tally per event.
// RemainingSeats is nil when the event has no capacity cap.
type EventSummaryDTO struct {
	EventID            uint   `json:"event_id"`
	Title              string `json:"title"`
	Capacity           *int   `json:"capacity"`
	TotalRegistrations int64  `json:"total_registrations"`
	RemainingSeats     *int64 `json:"remaining_seats"`
}

// DashboardDTO backs the admin landing page.
type DashboardDTO struct {
	TotalEvents         int64          `json:"total_events"`
	TotalUsers          int64          `json:"total_users"`
	TotalVenues         int64          `json:"total_venues"`
	TotalRegistrations  int64          `json:"total_registrations"`
	UpcomingEvents      []EventDTO     `json:"upcoming_events"`
	RecentRegistrations []RecentRegDTO `json:"recent_registrations"`
}

type RecentRegDTO struct {
	RegID        uint       `json:"reg_id"`
	EventID      uint       `json:"event_id"`
	EventTitle   string     `json:"event_title"`
	UserID       uint       `json:"user_id"`
	UserName     string     `json:"user_name"`
	Status       string     `json:"status"`
	RegisteredAt *time.Time `json:"registered_at"`
}
