package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const DefaultDBPath = "automotive_service.db"

var DB *gorm.DB

// ConnectDB opens the database. DB_URL selects a Postgres DSN; without it
// the app runs off a single SQLite file (DB_PATH, default automotive_service.db).
func ConnectDB() {
	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("DB_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = DefaultDBPath
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		logrus.Fatalf("Failed to connect database: %v", err)
	}

	DB = db
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}
