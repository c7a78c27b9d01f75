package models

import "time"

type Client struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	RuletaEnabled  bool      `json:"ruletaEnabled"`
	CreatedAt      time.Time `json:"createdAt"`
}
