package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// collection is the single table behind the store: one row per collection,
// the whole collection serialized as one JSON document.
type collection struct {
	Name string `gorm:"primaryKey;size:64;column:name"`
	Data []byte `gorm:"type:longblob"`
}

func (collection) TableName() string {
	return "collections"
}

// GormStore implements Store on MySQL.
type GormStore struct {
	db      *gorm.DB
	locking bool
}

// Connect opens the MySQL connection and migrates the collections table.
// The database container may still be warming up, so retry a few times
// before giving up.
func Connect(dsn string) (*GormStore, error) {
	if dsn == "" {
		return nil, errors.New("DB_DSN is not configured")
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			break
		}
		log.Warn().Err(err).Int("attempt", i+1).Msg("database connect failed, retrying in 2s")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after 5 attempts: %w", err)
	}

	if err := db.AutoMigrate(&collection{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}

	log.Info().Msg("connected to MySQL record store")
	return &GormStore{db: db}, nil
}

func (s *GormStore) Read(ctx context.Context, key string, out any) (bool, error) {
	q := s.db.WithContext(ctx)
	if s.locking {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row collection
	err := q.Where("name = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: read %q: %v", ErrStoreUnavailable, key, err)
	}
	if err := json.Unmarshal(row.Data, out); err != nil {
		return false, fmt.Errorf("decode collection %q: %w", key, err)
	}
	return true, nil
}

func (s *GormStore) Write(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", key, err)
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&collection{Name: key, Data: data}).Error
	if err != nil {
		return fmt.Errorf("%w: write %q: %v", ErrStoreUnavailable, key, err)
	}
	return nil
}

// Transact wraps fn in a database transaction. Reads inside fn take
// SELECT ... FOR UPDATE locks on the collection rows they touch, so the
// stock check, sale prepend and audit append commit or fail as one unit.
func (s *GormStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, locking: true})
	})
}
