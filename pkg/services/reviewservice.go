package services

import (
	"math"

	"virtual-product-studio/api/pkg/models"
)

type ReviewServiceImpl struct {
	reviews map[string][]models.Review
}

// NewReviewService indexes reviews by product id. The map is copied.
func NewReviewService(reviews map[string][]models.Review) ReviewService {
	copied := make(map[string][]models.Review, len(reviews))
	for id, list := range reviews {
		copied[id] = append([]models.Review(nil), list...)
	}
	return &ReviewServiceImpl{reviews: copied}
}

func (rs *ReviewServiceImpl) ReviewsFor(productID string) []models.Review {
	list := rs.reviews[productID]
	out := make([]models.Review, len(list))
	copy(out, list)
	return out
}

// AverageRating is the mean rating rounded to one decimal, 0 without reviews.
func (rs *ReviewServiceImpl) AverageRating(productID string) float64 {
	return rs.CalculateProductRating(productID).AverageRating
}

func (rs *ReviewServiceImpl) ReviewCount(productID string) int {
	return len(rs.reviews[productID])
}

// CalculateProductRating aggregates the star distribution of a product.
func (rs *ReviewServiceImpl) CalculateProductRating(productID string) models.Rating {
	list := rs.reviews[productID]
	result := models.Rating{ReviewCount: len(list)}
	if len(list) == 0 {
		return result
	}

	sum := 0
	for _, r := range list {
		sum += r.Rating
		switch r.Rating {
		case 5:
			result.FiveStarCount++
		case 4:
			result.FourStarCount++
		case 3:
			result.ThreeStarCount++
		case 2:
			result.TwoStarCount++
		case 1:
			result.OneStarCount++
		}
	}

	result.AverageRating = math.Round(float64(sum)/float64(len(list))*10) / 10
	return result
}
