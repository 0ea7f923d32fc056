package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	return db
}

func TestInitializeIdempotent(t *testing.T) {
	db := openTestDB(t)
	allowed := []string{"a@x.com", "b@x.com"}

	Initialize(db, allowed)
	Initialize(db, allowed)
	Initialize(db, allowed)

	var count int64
	require.NoError(t, db.Model(&AllowedUser{}).Count(&count).Error)
	require.EqualValues(t, 2, count)

	for _, email := range allowed {
		var perEmail int64
		require.NoError(t, db.Model(&AllowedUser{}).Where("email = ?", email).Count(&perEmail).Error)
		require.EqualValues(t, 1, perEmail, "expected exactly one row for %s", email)
	}
}

func TestInitializeCreatesTables(t *testing.T) {
	db := openTestDB(t)

	Initialize(db, nil)

	for _, model := range []any{&AllowedUser{}, &ActivityLog{}, &UnauthorizedAccess{}} {
		require.True(t, db.Migrator().HasTable(model))
	}
}
