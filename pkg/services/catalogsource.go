package services

import (
	"context"

	"virtual-product-studio/api/internal/common"
	"virtual-product-studio/api/pkg/data"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// LoadCatalog reads everything from source and builds the review and catalog services.
func LoadCatalog(ctx context.Context, source CatalogSource) (CatalogService, ReviewService, error) {
	products, err := source.LoadProducts(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load products")
	}
	categories, err := source.LoadCategories(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load categories")
	}
	reviews, err := source.LoadReviews(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load reviews")
	}

	reviewService := NewReviewService(reviews)
	catalog := NewCatalogService(products, categories, reviewService)
	util.LogInfo("catalog loaded",
		zap.Int("products", len(products)),
		zap.Int("categories", len(categories)),
		zap.Int("reviewedProducts", len(reviews)))
	return catalog, reviewService, nil
}

type staticCatalogSource struct{}

// NewStaticCatalogSource serves the built-in catalog.
func NewStaticCatalogSource() CatalogSource {
	return staticCatalogSource{}
}

func (staticCatalogSource) LoadProducts(context.Context) ([]models.Product, error) {
	return data.Products(), nil
}

func (staticCatalogSource) LoadCategories(context.Context) ([]models.Category, error) {
	return data.Categories(), nil
}

func (staticCatalogSource) LoadReviews(context.Context) (map[string][]models.Review, error) {
	return data.Reviews(), nil
}

// MongoCatalogSource reads a catalog seeded by cmd/idxr. It is read once at startup.
type MongoCatalogSource struct {
	productCollection  *mongo.Collection
	categoryCollection *mongo.Collection
	reviewCollection   *mongo.Collection
}

func NewMongoCatalogSource(db *mongo.Database) CatalogSource {
	return &MongoCatalogSource{
		productCollection:  db.Collection(common.PRODUCT_COLLECTION),
		categoryCollection: db.Collection(common.CATEGORY_COLLECTION),
		reviewCollection:   db.Collection(common.REVIEW_COLLECTION),
	}
}

func (s *MongoCatalogSource) LoadProducts(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := s.productCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	if len(products) == 0 {
		return nil, errors.New("product collection is empty; run idxr -action seed")
	}
	return products, nil
}

func (s *MongoCatalogSource) LoadCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categoryCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find categories")
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, errors.Wrap(err, "decode categories")
	}
	return categories, nil
}

func (s *MongoCatalogSource) LoadReviews(ctx context.Context) (map[string][]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "product_id", Value: 1}, {Key: "date", Value: -1}})
	cursor, err := s.reviewCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find reviews")
	}
	defer cursor.Close(ctx)

	var docs []models.ProductReviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode reviews")
	}

	reviews := make(map[string][]models.Review)
	for _, doc := range docs {
		reviews[doc.ProductId] = append(reviews[doc.ProductId], doc.Review)
	}
	return reviews, nil
}
