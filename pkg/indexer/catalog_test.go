package indexer

import (
	"testing"
	"time"

	"virtual-product-studio/api/internal/common"
	"virtual-product-studio/api/pkg/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCatalogIndexesDefinitions(t *testing.T) {
	m := CatalogIndexes(NewManager(nil))

	var names []string
	for _, def := range m.Definitions() {
		names = append(names, def.Name())
	}
	assert.Equal(t, []string{
		"product_position",
		"product_device_type",
		"product_brand",
		common.PRODUCT_COLLECTION + "_text_search",
		"review_product_date",
	}, names)
	assert.Equal(t, []string{common.PRODUCT_COLLECTION, common.REVIEW_COLLECTION}, m.Collections())
}

func TestAddTextIndexKeys(t *testing.T) {
	m := NewManager(nil).AddTextIndex("Product", "name", "description")

	defs := m.Definitions()
	require.Len(t, defs, 1)
	assert.Equal(t, bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}, defs[0].Index.Keys)
}

func TestProductWritesAssignPositions(t *testing.T) {
	products := data.Products()
	writes := productWrites(products)
	require.Len(t, writes, len(products))

	last, ok := writes[len(writes)-1].(*mongo.ReplaceOneModel)
	require.True(t, ok)
	assert.Equal(t, bson.M{"_id": "accessories"}, last.Filter)
	assert.True(t, *last.Upsert)
}

func TestReviewWritesAreDeterministic(t *testing.T) {
	writes := reviewWrites(data.Reviews())
	require.Len(t, writes, 7)

	first := writes[0].(*mongo.ReplaceOneModel)
	assert.Equal(t, bson.M{"_id": "r4"}, first.Filter)
}

func TestParseIndexStats(t *testing.T) {
	since := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	stat := parseIndexStats(bson.M{
		"name": "product_brand",
		"host": "localhost:27017",
		"accesses": bson.M{
			"ops":   int64(42),
			"since": primitive.NewDateTimeFromTime(since),
		},
	})

	assert.Equal(t, IndexStats{Name: "product_brand", Accesses: 42, Since: since, Host: "localhost:27017"}, stat)
}

func TestMigrationVersionsSorted(t *testing.T) {
	mm := NewMigrationManager(nil)
	for _, m := range CatalogMigrations(CatalogSnapshot{}, nil) {
		mm.AddMigration(m)
	}
	mm.AddMigration(Migration{Version: "0000_bootstrap"})

	assert.Equal(t, []string{"0000_bootstrap", "0001_catalog_indexes", "0002_seed_catalog"}, mm.Versions())
}
