package models

import "time"

type Sale struct {
	ID          int64     `json:"id"`
	ClientName  string    `json:"clientName"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Total       int64     `json:"total"` // centavos
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
