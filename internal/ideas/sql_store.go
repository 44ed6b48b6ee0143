package ideas

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ideas-listing/internal/models"
)

// SQLStore keeps the collection in a gorm table. It is seeded once and then
// only read, so it satisfies the same contract as Snapshot.
type SQLStore struct {
	db *gorm.DB
}

// OpenSQLStore opens a sqlite database at dsn and seeds it with posts,
// replacing whatever the table held before.
func OpenSQLStore(dsn string, posts []models.Post) (*SQLStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}
	return NewSQLStore(db, posts)
}

func NewSQLStore(db *gorm.DB, posts []models.Post) (*SQLStore, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	// every sqlite :memory: connection is its own database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Post{}); err != nil {
		return nil, fmt.Errorf("migrate posts: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("clear posts: %w", err)
		}
		if len(posts) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(posts, 100).Error; err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	return posts, nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
