package models

import "time"

type Product struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          int64     `json:"price"` // centavos, avoids float drift
	Images         []string  `json:"images"`
	CategoryID     int64     `json:"categoryId"`
	Stock          int       `json:"stock"`
	Personalizable bool      `json:"personalizable"`
	Featured       bool      `json:"featured"`
	CreatedAt      time.Time `json:"createdAt"`
}
