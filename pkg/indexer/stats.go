package indexer

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stats runs $indexStats on one collection.
func (m *Manager) Stats(ctx context.Context, collection string) ([]IndexStats, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$indexStats", Value: bson.D{}}},
	}

	cursor, err := m.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get index stats")
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err = cursor.All(ctx, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode stats")
	}

	stats := make([]IndexStats, 0, len(raw))
	for _, doc := range raw {
		stats = append(stats, parseIndexStats(doc))
	}
	return stats, nil
}

func parseIndexStats(doc bson.M) IndexStats {
	stat := IndexStats{}

	if name, ok := doc["name"].(string); ok {
		stat.Name = name
	}

	if accesses, ok := doc["accesses"].(bson.M); ok {
		switch ops := accesses["ops"].(type) {
		case int64:
			stat.Accesses = ops
		case int32:
			stat.Accesses = int64(ops)
		}
		if since, ok := accesses["since"].(primitive.DateTime); ok {
			stat.Since = since.Time().UTC()
		}
	}

	if host, ok := doc["host"].(string); ok {
		stat.Host = host
	}

	if building, ok := doc["building"].(bool); ok {
		stat.Building = building
	}

	return stat
}

// StatsAll collects stats for every collection with registered indexes.
func (m *Manager) StatsAll(ctx context.Context) (map[string][]IndexStats, error) {
	results := make(map[string][]IndexStats)
	for _, name := range m.Collections() {
		stats, err := m.Stats(ctx, name)
		if err != nil {
			if m.options.ContinueOnError {
				results[name] = []IndexStats{}
				continue
			}
			return nil, errors.Wrapf(err, "failed to get stats for %s", name)
		}
		results[name] = stats
	}

	return results, nil
}
