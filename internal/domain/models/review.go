package models

import "time"

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
	ReviewStatusReplied  ReviewStatus = "replied"
)

// ValidModeration reports whether a status is an acceptable moderation target.
// "replied" is set by the reply flow, never directly by moderation.
func ValidModeration(s ReviewStatus) bool {
	return s == ReviewStatusApproved || s == ReviewStatusRejected
}

// Review uses 24-char hex ids (the shape the legacy document store exposed).
type Review struct {
	ID             string       `json:"id"`
	ProductID      int64        `json:"productId"`
	ClientName     string       `json:"clientName"`
	ProfilePicture string       `json:"profilePicture,omitempty"`
	Rating         int          `json:"rating"`
	Message        string       `json:"message"`
	Response       string       `json:"response,omitempty"`
	Status         ReviewStatus `json:"status"`
	ImageURL       string       `json:"imageUrl,omitempty"`
	VideoURL       string       `json:"videoUrl,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// Visible reports whether a review may be shown on the public storefront.
func (r Review) Visible() bool {
	return r.Status == ReviewStatusApproved || r.Status == ReviewStatusReplied
}
