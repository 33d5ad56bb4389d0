package domain

import "time"

// AuthUser is the demo account returned by the login stub.
type AuthUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthState is the persisted auth snapshot of one device.
type AuthState struct {
	User            *AuthUser `json:"user"`
	Token           string    `json:"token,omitempty"`
	IsAuthenticated bool      `json:"isAuthenticated"`
}
