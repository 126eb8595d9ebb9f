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

func CreateTestCategory(t *testing.T, db DBLike, name string, pricePerNightCents int64, maxOccupancy int) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO room_categories (id, name, price_per_night_cents, max_occupancy) VALUES ($1, $2, $3, $4)",
		categoryID, name, pricePerNightCents, maxOccupancy)
	require.NoError(t, err)

	return categoryID
}

// CreateTestRoom takes an explicit id so tests control the assignment order.
func CreateTestRoom(t *testing.T, db DBLike, id, categoryID uuid.UUID, number string) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, category_id, room_number, is_active) VALUES ($1, $2, $3, true)",
		id, categoryID, number)
	require.NoError(t, err)

	return id
}

func CreateTestExtra(t *testing.T, db DBLike, name string, priceCents int64, perPerson bool) uuid.UUID {
	t.Helper()

	extraID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO extras (id, name, price_cents, per_person) VALUES ($1, $2, $3, $4)",
		extraID, name, priceCents, perPerson)
	require.NoError(t, err)

	return extraID
}

func CountRows(t *testing.T, db DBLike, table string, where string, args ...any) int {
	t.Helper()

	sql := "SELECT count(*) FROM " + table
	if where != "" {
		sql += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
