package models

type Review struct {
	Id       string `bson:"_id" json:"id"`
	UserId   string `bson:"user_id" json:"userId"`
	UserName string `bson:"user_name" json:"userName"`
	Rating   int    `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Title    string `bson:"title" json:"title"`
	Comment  string `bson:"comment" json:"comment"`
	Date     string `bson:"date" json:"date"`
	Verified bool   `bson:"verified" json:"verified"`
	Helpful  int    `bson:"helpful" json:"helpful"`
}

type Rating struct {
	AverageRating  float64 `bson:"average_rating" json:"averageRating"`
	ReviewCount    int     `bson:"review_count" json:"reviewCount"`
	FiveStarCount  int     `bson:"five_star_count" json:"fiveStarCount"`
	FourStarCount  int     `bson:"four_star_count" json:"fourStarCount"`
	ThreeStarCount int     `bson:"three_star_count" json:"threeStarCount"`
	TwoStarCount   int     `bson:"two_star_count" json:"twoStarCount"`
	OneStarCount   int     `bson:"one_star_count" json:"oneStarCount"`
}

// ProductReviewDocument is a review as stored in the review collection.
type ProductReviewDocument struct {
	Review    `bson:",inline"`
	ProductId string `bson:"product_id" json:"productId"`
}
