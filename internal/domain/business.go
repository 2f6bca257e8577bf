package domain

import (
	"time"
)

type BusinessProfile struct {
	ID        string     `json:"id"`
	OwnerID   int        `json:"owner_id"`
	Name      string     `json:"name"`
	Industry  string     `json:"industry"`
	Currency  string     `json:"currency"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CreateBusinessRequest struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Currency string `json:"currency"`
}

type UpdateBusinessRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	Industry *string `json:"industry,omitempty"`
	Currency *string `json:"currency,omitempty"`
}
