package models

// Event is a catalog entry as it appears on the wire. Optional columns
// are pointers so absent values serialize as JSON null, matching what
// the browser client expects.
type Event struct {
	EventID      int64   `json:"event_id"`
	EventName    string  `json:"event_name"`
	EventDate    string  `json:"event_date"` // YYYY-MM-DD
	StartTime    *string `json:"start_time"` // HH:MM:SS
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	TicketPrice  float64 `json:"ticket_price"`
	GoalAmount   float64 `json:"goal_amount"`
	RaisedAmount float64 `json:"raised_amount"`
	Suspended    bool    `json:"suspended"`
}

// EventUpsertRequest is the POST/PUT /api/events payload. Only these
// four fields are writable through the API; pricing and progress
// columns keep their database defaults.
type EventUpsertRequest struct {
	EventName   string  `json:"event_name"`
	EventDate   string  `json:"event_date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// SuspendRequest is the PATCH /api/events/:id/suspend payload.
type SuspendRequest struct {
	Suspended bool `json:"suspended"`
}

// SearchQuery carries the /api/search filters. Zero-valued fields are
// omitted from the generated WHERE clause; filters are conjunctive.
type SearchQuery struct {
	From             string // inclusive lower bound on event_date
	To               string // inclusive upper bound on event_date
	Location         string // case-insensitive substring
	Category         string // exact match
	IncludeSuspended bool
}
