package models

import "time"

// SignUpRequest is the free-text sign-up payload. The whole point of the
// flow is that the user writes everything in one sentence and the parser
// figures out the structure.
type SignUpRequest struct {
	UserInput string `json:"user_input"`
}

// ParsedUserInfo is the structured result of the extraction service.
// Every field except ApartmentNumber is guaranteed non-empty by the
// service boundary: missing values arrive as the documented sentinels
// ("Unknown", "Not provided", "00000"), never as empty strings.
type ParsedUserInfo struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	PhoneNumber     string  `json:"phone_number"`
	StreetAddress   string  `json:"street_address"`
	ApartmentNumber *string `json:"apartment_number"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Country         string  `json:"country"`
	ZipCode         string  `json:"zip_code"`
}

// UserProfile is a stored sign-up identity. Profiles are immutable once
// created; there is no update path, only create and delete.
type UserProfile struct {
	ID              int       `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	PhoneNumber     string    `json:"phone_number"`
	StreetAddress   string    `json:"street_address"`
	ApartmentNumber *string   `json:"apartment_number"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	Country         string    `json:"country"`
	ZipCode         string    `json:"zip_code"`
	CreatedAt       time.Time `json:"created_at"`
}
