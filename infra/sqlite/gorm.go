package sqlite

import (
	"fmt"

	"github.com/amirasaad/cryptomath/pkg/service/calc"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenGorm opens dsn as a gorm database whose connections carry the
// cryptomath extension, for code that queries through gorm.
func OpenGorm(svc *calc.Service, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{Conn: OpenDB(svc, dsn)}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}
	return db, nil
}
