package models

// Registration records an attendee's intent to attend an event.
// Registrations are insert-only: the API offers no way to list,
// update, or delete them.
type Registration struct {
	RegistrationID int64  `json:"registration_id"`
	EventID        int64  `json:"event_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Tickets        int    `json:"tickets"`
}

// RegistrationRequest is the POST /api/events/:id/register payload.
// Tickets defaults to 1 when omitted or non-positive.
type RegistrationRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Tickets  int    `json:"tickets"`
}
