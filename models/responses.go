package models

// ErrorResponse is the body of every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse acknowledges an operation that returns no entity.
type OKResponse struct {
	OK bool `json:"ok"`
}

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	OK   bool `json:"ok"`
	User User `json:"user"`
}

// UserResponse is returned by the current-user endpoint.
type UserResponse struct {
	User User `json:"user"`
}

// ItemResponse wraps a single item.
type ItemResponse struct {
	Item Item `json:"item"`
}

// ItemsResponse wraps a user's items, most recent first.
type ItemsResponse struct {
	Items []Item `json:"items"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
