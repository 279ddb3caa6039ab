package model

import "time"

// Item is owned by exactly one user. Category is populated only when
// CategoryID references an existing row.
type Item struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	CategoryID  *int      `db:"category_id" json:"category_id"`
	OwnerID     int       `db:"owner_id" json:"owner_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	Category    *Category `json:"category"`
	Tags        []Tag     `json:"tags"`
}

// ItemFilter narrows an owner's item listing.
type ItemFilter struct {
	OwnerID    int
	Query      string
	CategoryID *int
	Skip       int
	Limit      int
}

// ItemPatch carries optional item fields; nil means leave untouched.
// A non-nil TagIDs pointing at an empty slice clears all tags.
type ItemPatch struct {
	Name        *string
	Description *string
	CategoryID  *int
	TagIDs      *[]int
}
