package sql

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewMemoryORM() (ORM, error) {
	// A distinct database name per call keeps parallel test suites isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite in-memory db: %w", err)
	}

	return &DB{DB: gormDB, autoMigrationEnabled: true}, nil
}
