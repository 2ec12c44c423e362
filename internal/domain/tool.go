package domain

type Tool struct {
	ID               string `json:"id"`
	OwnerID          string `json:"owner_id"`
	Owner            *User  `json:"owner,omitempty"` // Populated when fetching tool details
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	PricePerDayCents int64  `json:"price_per_day_cents"`
	District         string `json:"district"`
	Municipality     string `json:"municipality"`
	// Active marks the tool as bookable. A tool is deactivated for the span
	// of an approved booking window and reactivated by the completion job.
	Active    bool    `json:"active"`
	CreatedOn string  `json:"created_on"`
	DeletedOn *string `json:"deleted_on,omitempty"`
}
