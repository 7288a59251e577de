package store

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

// ORMSource reads reference records from the reference_records table
type ORMSource struct {
	ormDB *gorm.DB
}

func NewORMSource(ormDB *gorm.DB) *ORMSource {
	return &ORMSource{ormDB: ormDB}
}

// Ping is to check the storage health status
func (s *ORMSource) Ping() error {
	return s.ormDB.DB().Ping()
}

func (s *ORMSource) Close() {
	logrus.WithField("prefix", "orm").Info("closing database connections")
	_ = s.ormDB.Close()
}

// Migrate creates or updates the reference table
func (s *ORMSource) Migrate() error {
	return s.ormDB.AutoMigrate(&schema.Record{}).Error
}

func (s *ORMSource) Load(ctx context.Context) (*schema.Dataset, error) {
	const op = "load postgres dataset"

	var records []schema.Record
	if err := s.ormDB.Order("id").Find(&records).Error; err != nil {
		return nil, schema.NewError(schema.ErrLoad, op, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, schema.NewError(schema.ErrLoad, op, err)
	}

	log.WithField("rows", len(records)).Info("reference dataset read from postgres")
	return schema.NewDataset(records)
}

// Import inserts records in one transaction
func (s *ORMSource) Import(ctx context.Context, records []schema.Record) error {
	const op = "import postgres dataset"

	tx := s.ormDB.BeginTx(ctx, nil)
	if err := tx.Error; err != nil {
		return schema.NewError(schema.ErrLoad, op, err)
	}

	for i := range records {
		r := records[i]
		r.ID = 0
		if err := tx.Create(&r).Error; err != nil {
			tx.Rollback()
			return schema.NewError(schema.ErrLoad, op, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return schema.NewError(schema.ErrLoad, op, err)
	}

	log.WithField("rows", len(records)).Info("reference records imported into postgres")
	return nil
}
