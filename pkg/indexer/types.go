package indexer

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IndexDefinition struct {
	Collection string
	Index      mongo.IndexModel
}

// Name returns the explicit index name, or "" when the server picks one.
func (d IndexDefinition) Name() string {
	if d.Index.Options == nil || d.Index.Options.Name == nil {
		return ""
	}
	return *d.Index.Options.Name
}

type Manager struct {
	db      *mongo.Database
	indexes []IndexDefinition
	options *Options
}

type Options struct {
	Timeout         time.Duration
	ContinueOnError bool
	SkipIfExists    bool
}

type Result struct {
	SuccessCount int             `json:"successCount"`
	SkippedCount int             `json:"skippedCount"`
	FailedCount  int             `json:"failedCount"`
	Failures     []FailureDetail `json:"failures"`
	Duration     time.Duration   `json:"duration"`
}

type FailureDetail struct {
	Collection string `json:"collection"`
	IndexName  string `json:"indexName"`
	Error      error  `json:"-"`
	Message    string `json:"error"`
}

type IndexStats struct {
	Name     string    `json:"name"`
	Accesses int64     `json:"accesses"`
	Since    time.Time `json:"since"`
	Host     string    `json:"host"`
	Building bool      `json:"building"`
}

type Migration struct {
	Version     string
	Description string
	Up          func(ctx context.Context, db *mongo.Database) error
	Down        func(ctx context.Context, db *mongo.Database) error
}

type MigrationStatus struct {
	Version   string    `bson:"version" json:"version"`
	AppliedAt time.Time `bson:"applied_at" json:"appliedAt"`
	Success   bool      `bson:"success" json:"success"`
}

func DefaultOptions() *Options {
	return &Options{
		Timeout:         60 * time.Second,
		ContinueOnError: true,
		SkipIfExists:    true,
	}
}

func NewManager(db *mongo.Database, opts ...*Options) *Manager {
	o := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		o = opts[0]
	}

	return &Manager{
		db:      db,
		indexes: []IndexDefinition{},
		options: o,
	}
}

// Definitions returns the registered index definitions in registration order.
func (m *Manager) Definitions() []IndexDefinition {
	out := make([]IndexDefinition, len(m.indexes))
	copy(out, m.indexes)
	return out
}

// Collections returns the distinct collections that have registered indexes.
func (m *Manager) Collections() []string {
	seen := make(map[string]bool)
	var out []string
	for _, def := range m.indexes {
		if !seen[def.Collection] {
			seen[def.Collection] = true
			out = append(out, def.Collection)
		}
	}
	return out
}

func (m *Manager) AddIndex(collection string, index mongo.IndexModel) *Manager {
	m.indexes = append(m.indexes, IndexDefinition{
		Collection: collection,
		Index:      index,
	})
	return m
}

// AddTextIndex registers a text index named <collection>_text_search.
func (m *Manager) AddTextIndex(collection string, fields ...string) *Manager {
	keys := bson.D{}
	for _, field := range fields {
		keys = append(keys, bson.E{Key: field, Value: "text"})
	}

	return m.AddIndex(collection, mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(collection + "_text_search"),
	})
}

func (m *Manager) AddCompoundIndex(collection string, fields []string, opts ...*options.IndexOptions) *Manager {
	keys := bson.D{}
	for _, field := range fields {
		keys = append(keys, bson.E{Key: field, Value: 1})
	}

	indexOpts := options.Index()
	if len(opts) > 0 {
		indexOpts = opts[0]
	}

	return m.AddIndex(collection, mongo.IndexModel{
		Keys:    keys,
		Options: indexOpts,
	})
}
