package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"

	"backoffice/internal/domain"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to the
// pure-Go SQLite driver for anything else (file path or :memory:).
func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError maps unique violations to gorm.ErrDuplicatedKey on
	// both drivers
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate keeps the schema in step with the domain types. Shared by the
// API entrypoint, the seeder and the e2e suite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.RoomType{},
		&domain.Room{},
		&domain.HotelService{},
		&domain.Customer{},
		&domain.Booking{},
		&domain.Category{},
		&domain.Author{},
		&domain.Book{},
		&domain.Loan{},
		&domain.Subject{},
		&domain.Teacher{},
		&domain.Student{},
		&domain.TrainingClass{},
		&domain.Session{},
	)
}
