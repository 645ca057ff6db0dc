package db

import (
	"fmt"
	"log"
	"net/url"
	"yatube/config"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init connects to MySQL, PostgreSQL or SQLite, in that order of preference
func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		var err error
		if dialector, err = mysqlDialector(config.MYSQL_DSN); err != nil {
			panic(err)
		}
	} else if config.POSTGRES_DSN != "" {
		log.Printf("Using PostgreSQL")
		dialector = postgres.Open(config.POSTGRES_DSN)
	} else {
		log.Printf("Using SQLite: %s", config.SQLITE_FILE)
		dialector = sqlite.Open(config.SQLITE_FILE)
	}
	if err := Open(dialector); err != nil {
		panic(err)
	}
}

// mysqlDialector validates the DSN and makes sure text columns come back as utf8mb4
func mysqlDialector(dsn string) (gorm.Dialector, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid MYSQL_DSN: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}
	log.Printf("Using MySQL database %q at %s", cfg.DBName, cfg.Addr)
	return mysql.New(mysql.Config{DSN: cfg.FormatDSN(), DSNConfig: cfg}), nil
}

func Open(dialector gorm.Dialector) error {
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	})
	if err != nil {
		return err
	}
	Instance = db
	return nil
}

func Close() {
	if Instance == nil {
		return
	}
	sqlDB, err := Instance.DB()
	if err != nil {
		log.Printf("Cannot get DB to close: %v", err)
		return
	}
	if err = sqlDB.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}
}

// OpenMemory opens a private in-memory SQLite database, used by the tests
func OpenMemory(name string) error {
	return Open(sqlite.Open("file:" + url.PathEscape(name) + "?mode=memory&cache=shared&_fk=1"))
}
