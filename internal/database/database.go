package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	_ "modernc.org/sqlite"         // Pure Go SQLite driver
)

// Driver names as registered with database/sql.
const (
	DriverSQLite = "sqlite"
	DriverOracle = "oracle"
)

func init() {
	// go-ora binds positionally by name; sqlx does not know the driver name.
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
}

// NewSQLXDB opens and pings a database for the given driver.
func NewSQLXDB(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverSQLite, DriverOracle:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// One writer at a time; also keeps a ":memory:" database on a single connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	return db, nil
}
