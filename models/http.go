package models

// ItemRequest is the body of item create and update requests.
// Any owner field sent by the client is ignored.
type ItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ToItem converts the request into an [Item] owned by userID.
func (r ItemRequest) ToItem(userID int64) Item {
	item := Item{UserID: userID, Title: r.Title}
	if r.Description != "" {
		description := r.Description
		item.Description = &description
	}
	return item
}
