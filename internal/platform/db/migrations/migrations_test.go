package migrations_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth_backend/internal/platform/db/dbtest"
	"wealth_backend/internal/platform/db/migrations"
)

func TestUp_UnknownDriver(t *testing.T) {
	t.Parallel()

	gdb := dbtest.Open(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	_, err = migrations.Up(context.Background(), sqlDB, "oracle")
	assert.Error(t, err)
}

// TestUp_Idempotent は二度目の適用で新たなマイグレーションが走らないことを検証します。
func TestUp_Idempotent(t *testing.T) {
	t.Parallel()

	gdb := dbtest.Open(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	applied, err := migrations.Up(context.Background(), sqlDB, "sqlite")
	require.NoError(t, err)
	assert.Zero(t, applied)
}

// TestSchema_EmailUnique はusers.emailに一意制約があることを検証します。
func TestSchema_EmailUnique(t *testing.T) {
	t.Parallel()

	gdb := dbtest.Open(t)
	now := time.Now().UTC()

	insert := "INSERT INTO users (id, email, name, picture, password_hash, created_at) VALUES (?, ?, ?, '', 'x', ?)"
	require.NoError(t, gdb.Exec(insert, "u1", "dup@example.com", "A", now).Error)
	assert.Error(t, gdb.Exec(insert, "u2", "dup@example.com", "B", now).Error)
}

// TestSchema_GoalsCascadeOnUserDelete はユーザー削除で目標も削除されることを検証します。
func TestSchema_GoalsCascadeOnUserDelete(t *testing.T) {
	t.Parallel()

	gdb := dbtest.Open(t)
	now := time.Now().UTC()

	require.NoError(t, gdb.Exec(
		"INSERT INTO users (id, email, name, picture, password_hash, created_at) VALUES ('u1', 'a@example.com', 'A', '', 'x', ?)", now,
	).Error)
	require.NoError(t, gdb.Exec(
		`INSERT INTO goals (id, user_id, goal_type, target_amount, current_amount, monthly_investment, risk_profile, created_at)
		 VALUES ('g1', 'u1', 'retirement', 1000000, 0, 5000, 'moderate', ?)`, now,
	).Error)

	require.NoError(t, gdb.Exec("DELETE FROM users WHERE id = 'u1'").Error)

	var count int64
	require.NoError(t, gdb.Table("goals").Count(&count).Error)
	assert.Zero(t, count)
}

// TestSchema_GoalRequiresExistingUser は存在しないユーザーへの目標作成が外部キー違反になることを検証します。
func TestSchema_GoalRequiresExistingUser(t *testing.T) {
	t.Parallel()

	gdb := dbtest.Open(t)

	err := gdb.Exec(
		`INSERT INTO goals (id, user_id, goal_type, target_amount, current_amount, monthly_investment, risk_profile, created_at)
		 VALUES ('g1', 'ghost', 'retirement', 1, 0, 0, 'moderate', ?)`, time.Now().UTC(),
	).Error
	assert.Error(t, err)
}
