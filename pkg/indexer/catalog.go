package indexer

import (
	"context"
	"sort"

	"virtual-product-studio/api/internal/common"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CatalogIndexes registers the indexes the Mongo catalog source relies on.
func CatalogIndexes(m *Manager) *Manager {
	return m.
		AddCompoundIndex(common.PRODUCT_COLLECTION, []string{"position"},
			options.Index().SetName("product_position").SetUnique(true)).
		AddCompoundIndex(common.PRODUCT_COLLECTION, []string{"device_type", "position"},
			options.Index().SetName("product_device_type")).
		AddCompoundIndex(common.PRODUCT_COLLECTION, []string{"brand_id"},
			options.Index().SetName("product_brand")).
		AddTextIndex(common.PRODUCT_COLLECTION, "name", "brand_name", "description").
		AddCompoundIndex(common.REVIEW_COLLECTION, []string{"product_id", "date"},
			options.Index().SetName("review_product_date"))
}

// CatalogSnapshot is everything the seed writes.
type CatalogSnapshot struct {
	Products   []models.Product
	Categories []models.Category
	Reviews    map[string][]models.Review
}

type SeedResult struct {
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Reviews    int64 `json:"reviews"`
}

func productWrites(products []models.Product) []mongo.WriteModel {
	writes := make([]mongo.WriteModel, 0, len(products))
	for i, p := range products {
		p.Position = i
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.Id}).
			SetReplacement(p).
			SetUpsert(true))
	}
	return writes
}

func categoryWrites(categories []models.Category) []mongo.WriteModel {
	writes := make([]mongo.WriteModel, 0, len(categories))
	for _, c := range categories {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": c.Id}).
			SetReplacement(c).
			SetUpsert(true))
	}
	return writes
}

// reviewWrites orders by product id so seeding is deterministic.
func reviewWrites(reviews map[string][]models.Review) []mongo.WriteModel {
	productIDs := make([]string, 0, len(reviews))
	for id := range reviews {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	var writes []mongo.WriteModel
	for _, productID := range productIDs {
		for _, r := range reviews[productID] {
			doc := models.ProductReviewDocument{Review: r, ProductId: productID}
			writes = append(writes, mongo.NewReplaceOneModel().
				SetFilter(bson.M{"_id": r.Id}).
				SetReplacement(doc).
				SetUpsert(true))
		}
	}
	return writes
}

// SeedCatalog upserts the snapshot. Running it twice leaves the same documents.
func SeedCatalog(ctx context.Context, db *mongo.Database, snapshot CatalogSnapshot) (SeedResult, error) {
	var result SeedResult
	bulk := options.BulkWrite().SetOrdered(false)

	steps := []struct {
		collection string
		writes     []mongo.WriteModel
		count      *int64
	}{
		{common.PRODUCT_COLLECTION, productWrites(snapshot.Products), &result.Products},
		{common.CATEGORY_COLLECTION, categoryWrites(snapshot.Categories), &result.Categories},
		{common.REVIEW_COLLECTION, reviewWrites(snapshot.Reviews), &result.Reviews},
	}

	for _, step := range steps {
		if len(step.writes) == 0 {
			continue
		}
		res, err := db.Collection(step.collection).BulkWrite(ctx, step.writes, bulk)
		if err != nil {
			return result, errors.Wrapf(err, "seed %s", step.collection)
		}
		*step.count = res.UpsertedCount + res.MatchedCount
		util.LogInfo("seeded collection",
			zap.String("collection", step.collection),
			zap.Int("documents", len(step.writes)))
	}

	return result, nil
}

// CatalogMigrations creates the catalog indexes and seeds the snapshot.
func CatalogMigrations(snapshot CatalogSnapshot, opts *Options) []Migration {
	return []Migration{
		{
			Version:     "0001_catalog_indexes",
			Description: "create product and review indexes",
			Up: func(ctx context.Context, db *mongo.Database) error {
				_, err := CatalogIndexes(NewManager(db, opts)).Create(ctx)
				return err
			},
			Down: func(ctx context.Context, db *mongo.Database) error {
				return CatalogIndexes(NewManager(db, opts)).Drop(ctx)
			},
		},
		{
			Version:     "0002_seed_catalog",
			Description: "seed products, categories and reviews",
			Up: func(ctx context.Context, db *mongo.Database) error {
				_, err := SeedCatalog(ctx, db, snapshot)
				return err
			},
			Down: func(ctx context.Context, db *mongo.Database) error {
				for _, name := range []string{common.PRODUCT_COLLECTION, common.CATEGORY_COLLECTION, common.REVIEW_COLLECTION} {
					if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
						return errors.Wrapf(err, "clear %s", name)
					}
				}
				return nil
			},
		},
	}
}
