package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAPIKeyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE api_keys (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		consumer_key TEXT NOT NULL UNIQUE,
		secret_hash TEXT NOT NULL,
		description TEXT NOT NULL,
		permissions TEXT NOT NULL,
		status TEXT NOT NULL,
		last_used DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		vendor_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price_cents INTEGER NOT NULL,
		stock INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createVendorTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vendors (
		id TEXT PRIMARY KEY,
		business_name TEXT NOT NULL,
		contact_email TEXT NOT NULL,
		status TEXT NOT NULL,
		verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createDriverTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE drivers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		vehicle_type TEXT NOT NULL,
		is_available BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
