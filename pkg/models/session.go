package models

import "time"

// SessionSummary is the counts view of a shopping session.
type SessionSummary struct {
	Id            string    `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	LastSeenAt    time.Time `json:"lastSeenAt"`
	CartItemCount int       `json:"cartItemCount"`
	CartTotal     int       `json:"cartTotal"`
	WishlistCount int       `json:"wishlistCount"`
	CompareCount  int       `json:"compareCount"`
	OrderCount    int       `json:"orderCount"`
}
