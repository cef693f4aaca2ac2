// Package db maintains the connection to the outcome archive: a small
// postgres database holding one row per simulated fight, keyed by the
// seed that produced it, so any archived fight can be re-run and
// audited later. The simulation core never touches this package; only
// the batch runner's persistence hook and the HTTP surface's lookup
// endpoint do.
package db

import (
	"fmt"
	"time"

	"combatsim/pkg/logger"

	"github.com/jackc/pgx"
	"github.com/spf13/viper"
)

// configuration :
// Connection settings for the outcome archive, read from the
// `Database` section of the configuration file. Defaults target a
// local development archive.
//
// The `Host` and `Port` locate the postgres instance.
//
// The `Name` is the database holding the `combat_outcomes` table.
//
// The `User` and `Password` authenticate against it.
//
// The `Connections` bounds the pool size; batch runs write one row per
// fight so a handful of connections is plenty.
type configuration struct {
	Host        string
	Port        uint16
	Name        string
	User        string
	Password    string
	Connections int
}

func parseConfiguration() configuration {
	config := configuration{
		Host:        "localhost",
		Port:        5432,
		Name:        "combat_archive",
		User:        "combatsim",
		Password:    "",
		Connections: 4,
	}

	if viper.IsSet("Database.Host") {
		config.Host = viper.GetString("Database.Host")
	}
	if viper.IsSet("Database.Port") {
		config.Port = uint16(viper.GetInt32("Database.Port"))
	}
	if viper.IsSet("Database.Name") {
		config.Name = viper.GetString("Database.Name")
	}
	if viper.IsSet("Database.User") {
		config.User = viper.GetString("Database.User")
	}
	if viper.IsSet("Database.Password") {
		config.Password = viper.GetString("Database.Password")
	}
	if viper.IsSet("Database.Connections") {
		config.Connections = viper.GetInt("Database.Connections")
	}

	return config
}

// ErrNoPool :
// Raised when a query is issued against a DB whose connection pool was
// never established.
var ErrNoPool = fmt.Errorf("db: no connection pool available for the outcome archive")

// DB :
// Wraps a pgx connection pool targeting the outcome archive. Queries go
// through DBQuery/DBExecute so callers never hold the pool directly.
type DB struct {
	pool *pgx.ConnPool
	log  logger.Logger
}

// NewPool connects to the archive described by the configuration file.
// The connection is retried a few times with a short pause, since in a
// containerized setup the archive often comes up a moment after the
// simulator; if it stays unreachable the call panics. An operator who
// asked for persistence wants to find out at startup, not after the
// first batch of fights has silently gone unarchived.
func NewPool(log logger.Logger) *DB {
	config := parseConfiguration()

	connConfig := pgx.ConnConfig{
		Host:     config.Host,
		Port:     config.Port,
		Database: config.Name,
		User:     config.User,
		Password: config.Password,
	}

	var pool *pgx.ConnPool
	var err error

	for attempt := 0; attempt < 3; attempt++ {
		pool, err = pgx.NewConnPool(
			pgx.ConnPoolConfig{
				ConnConfig:     connConfig,
				MaxConnections: config.Connections,
			},
		)
		if err == nil {
			break
		}

		log.Trace(logger.Warning, "db", fmt.Sprintf("could not reach outcome archive at %s:%d (attempt %d, err: %v)", config.Host, config.Port, attempt+1, err))
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		panic(fmt.Errorf("could not connect to outcome archive at %s:%d (err: %v)", config.Host, config.Port, err))
	}

	log.Trace(logger.Notice, "db", fmt.Sprintf("connected to outcome archive %s at %s:%d", config.Name, config.Host, config.Port))

	return &DB{
		pool: pool,
		log:  log,
	}
}

// DBQuery runs a read against the archive and returns the raw rows; the
// caller owns closing them.
func (dbase *DB) DBQuery(query string, args ...interface{}) (*pgx.Rows, error) {
	if dbase.pool == nil {
		return nil, ErrNoPool
	}
	return dbase.pool.Query(query, args...)
}

// DBExecute runs a statement that returns no rows (inserts, schema
// maintenance).
func (dbase *DB) DBExecute(query string, args ...interface{}) (pgx.CommandTag, error) {
	if dbase.pool == nil {
		return pgx.CommandTag(""), ErrNoPool
	}
	return dbase.pool.Exec(query, args...)
}
