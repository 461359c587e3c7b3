package models

import "time"

type WishlistItem struct {
	Id string `json:"id"`
	Configuration
	AddedAt time.Time `json:"addedAt"`
}

// CompareItem is keyed by product id; a product appears at most once.
type CompareItem struct {
	Configuration
}

type CompareAddResponse struct {
	Added bool          `json:"added"`
	Items []CompareItem `json:"items"`
}

type StorageMetric struct {
	ProductId string `json:"productId"`
	Label     string `json:"label"`
	GB        int    `json:"gb"`
}

// RadarScores are normalised to [0,1] except when prices are negative.
type RadarScores struct {
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Features float64 `json:"features"`
	Value    float64 `json:"value"`
}

type ComparisonMetric struct {
	ProductId  string         `json:"productId"`
	Name       string         `json:"name"`
	TotalPrice int            `json:"totalPrice"`
	Rating     float64        `json:"rating"`
	Storage    *StorageMetric `json:"storage,omitempty"`
	Radar      RadarScores    `json:"radar"`
}

type ComparisonMetrics struct {
	Items    []ComparisonMetric `json:"items"`
	MaxPrice int                `json:"maxPrice"`
}
