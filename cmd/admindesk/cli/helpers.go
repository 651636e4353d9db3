package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/admindesk/admindesk/internal/store"
)

// openStore resolves the database settings from flags and config and opens
// the store. Flags win over config values; SQLite with an on-disk database
// under dataDir is the default.
func openStore(dataDir, driver, dsn string) (*store.Store, error) {
	if driver == "" {
		driver = viper.GetString("db.driver")
	}
	if dsn == "" {
		dsn = viper.GetString("db.dsn")
	}

	switch driver {
	case "", store.DriverSQLite:
		if dsn == "" {
			if dataDir == "" {
				home, _ := os.UserHomeDir()
				dataDir = home + "/.admindesk"
			}
			var err error
			dsn, err = store.SQLiteDSN(dataDir)
			if err != nil {
				return nil, err
			}
		}
	case store.DriverPostgres, store.DriverMySQL:
		if dsn == "" {
			return nil, fmt.Errorf("driver %q requires --dsn or db.dsn", driver)
		}
	}

	st, err := store.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// storeDriver names the effective driver for logging.
func storeDriver(driver string) string {
	if driver == "" {
		driver = viper.GetString("db.driver")
	}
	if driver == "" {
		return store.DriverSQLite
	}
	return driver
}

// cmdContext returns a background context for CLI initialization.
func cmdContext() context.Context {
	return context.Background()
}
