package models

import "time"

// Item is a personal text note owned by exactly one user.
type Item struct {
	// ID is the unique identifier of the item.
	ID int64 `json:"id"`

	// UserID is the owner. It is always taken from the authenticated
	// identity and never from client input.
	UserID int64 `json:"-"`

	// Title is required and never blank.
	Title string `json:"title"`

	// Description is optional; nil is stored as NULL and rendered as null.
	Description *string `json:"description"`

	// CreatedAt is assigned by the database on insert.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
