//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateTestLocation(t *testing.T, db DBLike, name, city string) uuid.UUID {
	t.Helper()

	locationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO locations (id, name, address, city, state, zip_code) VALUES ($1, $2, $3, $4, $5, $6)",
		locationID, name, "1 Fleet Way", city, "CA", "90001")
	require.NoError(t, err)

	return locationID
}

func CreateTestEmployee(t *testing.T, db DBLike, email, role string, locationID uuid.UUID) uuid.UUID {
	t.Helper()

	employeeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO employees (id, first_name, last_name, email, phone, role, hire_date, location_id, password_hash, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true)
		 ON CONFLICT (email) DO NOTHING`,
		employeeID, "Alex", "Tanaka", email, "+1-555-0199", role, time.Now().AddDate(-1, 0, 0), locationID, TestPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM employees WHERE email = $1", email).Scan(&employeeID)
	}

	return employeeID
}

func CreateTestCustomer(t *testing.T, db DBLike, email, driverLicense string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO customers (id, first_name, last_name, email, phone, driver_license)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email) DO NOTHING`,
		customerID, "Jordan", "Smith", email, "+1-555-0100", driverLicense)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID)
	}

	return customerID
}

func CreateTestVehicle(t *testing.T, db DBLike, licensePlate string, dailyRateCents int64, locationID uuid.UUID) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO vehicles (id, make, model, license_plate, year, availability, daily_rate_cents, mileage, location_id)
		 VALUES ($1, $2, $3, $4, $5, true, $6, $7, $8)`,
		vehicleID, "Toyota", "Corolla", licensePlate, 2022, dailyRateCents, 10000, locationID)
	require.NoError(t, err)

	return vehicleID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
