package indexer

import (
	"context"
	"sort"
	"time"

	"virtual-product-studio/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const migrationCollection = "_studio_migrations"

// MigrationManager applies versioned migrations once, recording each run.
type MigrationManager struct {
	db         *mongo.Database
	migrations []Migration
}

func NewMigrationManager(db *mongo.Database) *MigrationManager {
	return &MigrationManager{
		db:         db,
		migrations: []Migration{},
	}
}

func (mm *MigrationManager) AddMigration(migration Migration) *MigrationManager {
	mm.migrations = append(mm.migrations, migration)
	return mm
}

// Versions returns the registered versions in apply order.
func (mm *MigrationManager) Versions() []string {
	mm.sortAscending()
	out := make([]string, 0, len(mm.migrations))
	for _, m := range mm.migrations {
		out = append(out, m.Version)
	}
	return out
}

func (mm *MigrationManager) sortAscending() {
	sort.SliceStable(mm.migrations, func(i, j int) bool {
		return mm.migrations[i].Version < mm.migrations[j].Version
	})
}

func (mm *MigrationManager) Run(ctx context.Context) error {
	mm.sortAscending()

	coll := mm.db.Collection(migrationCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "version", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create migration index")
	}

	for _, migration := range mm.migrations {
		applied, err := mm.isApplied(ctx, migration.Version)
		if err != nil {
			return errors.Wrapf(err, "failed to check migration status for %s", migration.Version)
		}
		if applied {
			util.LogDebug("migration already applied", zap.String("version", migration.Version))
			continue
		}

		util.LogInfo("running migration",
			zap.String("version", migration.Version),
			zap.String("description", migration.Description))

		start := time.Now()
		err = migration.Up(ctx, mm.db)
		status := MigrationStatus{
			Version:   migration.Version,
			AppliedAt: time.Now().UTC(),
			Success:   err == nil,
		}

		filter := bson.M{"version": migration.Version}
		upsert := options.Replace().SetUpsert(true)
		if err != nil {
			if _, saveErr := coll.ReplaceOne(ctx, filter, status, upsert); saveErr != nil {
				util.LogError("failed to save migration status", saveErr)
			}
			return errors.Wrapf(err, "migration %s failed", migration.Version)
		}

		if _, err = coll.ReplaceOne(ctx, filter, status, upsert); err != nil {
			return errors.Wrap(err, "failed to save migration status")
		}

		util.LogInfo("migration completed",
			zap.String("version", migration.Version),
			zap.Duration("took", time.Since(start)))
	}

	return nil
}

// Rollback undoes applied migrations newer than targetVersion, newest first.
func (mm *MigrationManager) Rollback(ctx context.Context, targetVersion string) error {
	mm.sortAscending()
	coll := mm.db.Collection(migrationCollection)

	for i := len(mm.migrations) - 1; i >= 0; i-- {
		migration := mm.migrations[i]
		if migration.Version <= targetVersion {
			break
		}

		applied, err := mm.isApplied(ctx, migration.Version)
		if err != nil {
			return errors.Wrapf(err, "failed to check migration status for %s", migration.Version)
		}
		if !applied {
			continue
		}

		if migration.Down == nil {
			return errors.Errorf("migration %s does not support rollback", migration.Version)
		}

		util.LogInfo("rolling back migration", zap.String("version", migration.Version))
		if err := migration.Down(ctx, mm.db); err != nil {
			return errors.Wrapf(err, "rollback of migration %s failed", migration.Version)
		}

		if _, err := coll.DeleteOne(ctx, bson.M{"version": migration.Version}); err != nil {
			return errors.Wrap(err, "failed to remove migration status")
		}
	}

	return nil
}

func (mm *MigrationManager) Status(ctx context.Context) ([]MigrationStatus, error) {
	cursor, err := mm.db.Collection(migrationCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "version", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query migration status")
	}
	defer cursor.Close(ctx)

	var statuses []MigrationStatus
	if err = cursor.All(ctx, &statuses); err != nil {
		return nil, errors.Wrap(err, "failed to decode migration statuses")
	}

	return statuses, nil
}

func (mm *MigrationManager) isApplied(ctx context.Context, version string) (bool, error) {
	count, err := mm.db.Collection(migrationCollection).CountDocuments(ctx, bson.M{"version": version, "success": true})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
