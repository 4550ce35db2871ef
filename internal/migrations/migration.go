package migrations

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"dijlah_store/internal/models"
)

// SchemaOps is the slice of schema operations the migrations need. The gorm
// migrator satisfies it in production; tests substitute a fake.
type SchemaOps interface {
	AutoMigrate(dst ...interface{}) error
	HasColumn(dst interface{}, field string) bool
	AddColumn(dst interface{}, field string) error
}

// Recorder tracks which migration versions have already run.
type Recorder interface {
	Applied(version string) (bool, error)
	Record(version string) error
}

type Migration struct {
	Version string
	Name    string
	Run     func(ops SchemaOps) error
}

// All returns the migration list in application order. Column adds are guarded
// by HasColumn so rerunning a recorded-but-reapplied migration stays a no-op.
func All() []Migration {
	return []Migration{
		{
			Version: "001",
			Name:    "create products table",
			Run: func(ops SchemaOps) error {
				return ops.AutoMigrate(&models.Product{})
			},
		},
		{
			Version: "002",
			Name:    "create orders table",
			Run: func(ops SchemaOps) error {
				return ops.AutoMigrate(&models.Order{})
			},
		},
		{
			Version: "003",
			Name:    "add category column to products",
			Run: func(ops SchemaOps) error {
				return ensureColumn(ops, &models.Product{}, "category")
			},
		},
		{
			Version: "004",
			Name:    "add sizes column to products",
			Run: func(ops SchemaOps) error {
				return ensureColumn(ops, &models.Product{}, "sizes")
			},
		},
		{
			Version: "005",
			Name:    "add status column to orders",
			Run: func(ops SchemaOps) error {
				return ensureColumn(ops, &models.Order{}, "status")
			},
		},
	}
}

func ensureColumn(ops SchemaOps, model interface{}, field string) error {
	if ops.HasColumn(model, field) {
		return nil
	}
	return ops.AddColumn(model, field)
}

// Apply runs every migration not yet recorded, in order, recording each one
// after it succeeds.
func Apply(list []Migration, ops SchemaOps, rec Recorder) error {
	for _, m := range list {
		done, err := rec.Applied(m.Version)
		if err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.Version, err)
		}
		if done {
			continue
		}
		if err := m.Run(ops); err != nil {
			return fmt.Errorf("migration %s (%s) failed: %w", m.Version, m.Name, err)
		}
		if err := rec.Record(m.Version); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", m.Version, err)
		}
		log.Printf("Applied migration %s: %s", m.Version, m.Name)
	}
	return nil
}

// RunMigrations applies all pending migrations against the database. It must
// run before any query touching the category, sizes or status columns.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	err := Apply(All(), gormOps{db: db}, &gormRecorder{db: db})
	if err != nil {
		return err
	}

	log.Println("Database migrations completed")
	return nil
}

type schemaMigration struct {
	Version   string    `gorm:"primaryKey"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

type gormOps struct {
	db *gorm.DB
}

func (o gormOps) AutoMigrate(dst ...interface{}) error {
	return o.db.AutoMigrate(dst...)
}

func (o gormOps) HasColumn(dst interface{}, field string) bool {
	return o.db.Migrator().HasColumn(dst, field)
}

func (o gormOps) AddColumn(dst interface{}, field string) error {
	return o.db.Migrator().AddColumn(dst, field)
}

type gormRecorder struct {
	db *gorm.DB
}

func (r *gormRecorder) Applied(version string) (bool, error) {
	var count int64
	err := r.db.Model(&schemaMigration{}).Where("version = ?", version).Count(&count).Error
	return count > 0, err
}

func (r *gormRecorder) Record(version string) error {
	return r.db.Create(&schemaMigration{Version: version, AppliedAt: time.Now()}).Error
}
