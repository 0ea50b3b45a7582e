package models

import "time"

// Business represents an onboarded horeca business. It is the subject of the
// session and the owner of all menu items.
type Business struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	HorecaName   string    `json:"horeca_name" db:"horeca_name"`
	Address      string    `json:"address" db:"address"`
	Phone        string    `json:"phone" db:"phone"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // '-' means don't send in JSON response
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// BusinessInfo is the derived location view returned by /api/business-info.
// Country is always empty: the address field does not track it separately.
type BusinessInfo struct {
	City    string `json:"city"`
	Country string `json:"country"`
}
