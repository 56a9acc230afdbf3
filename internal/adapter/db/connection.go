package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"taskboard/internal/config"
)

// sqliteDriverName is go-sqlite3 with unicodeLowerFunc registered on every connection.
const sqliteDriverName = "sqlite3_taskboard"

// unicodeLowerFunc folds case like strings.ToLower; sqlite's built-in LOWER only folds ASCII.
const unicodeLowerFunc = "unicode_lower"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(unicodeLowerFunc, strings.ToLower, true)
		},
	})
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case config.DriverMySQL:
		return connectMySQL(conf)
	case config.DriverSQLite:
		return ConnectSQLite(conf.SQLitePath)
	default:
		return nil, fmt.Errorf("driver %q has no sql connection", conf.DbDriver)
	}
}

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	// Fail on a malformed DSN before dialing.
	if _, err := mysql.ParseDSN(dsn); err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(config.DriverMySQL, dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens a sqlite database file, or a private in-memory one for ":memory:".
func ConnectSQLite(path string) (*sqlx.DB, error) {
	sqlDB, err := sql.Open(sqliteDriverName, path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	// Keep the sqlite3 name so bind vars and schema selection follow the sqlite dialect.
	db := sqlx.NewDb(sqlDB, config.DriverSQLite)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	// sqlite allows a single writer; one connection also keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)
	return db, nil
}
