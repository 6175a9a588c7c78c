package mysql

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
  store_key  VARCHAR(191) NOT NULL PRIMARY KEY,
  value      LONGTEXT     NOT NULL,
  updated_at DATETIME(6)  NOT NULL
) DEFAULT CHARSET=utf8mb4;
`

func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	// test ping
	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx2); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx2, schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
