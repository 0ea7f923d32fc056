package access

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"activitylog/internal/database"
)

func newTestService(t *testing.T, allowed []string) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	database.Initialize(db, allowed)

	return NewService(db), db
}

func unauthorizedEntries(t *testing.T, db *gorm.DB) []database.UnauthorizedAccess {
	t.Helper()

	var entries []database.UnauthorizedAccess
	require.NoError(t, db.Find(&entries).Error)
	return entries
}

func TestAuthorizeAllowed(t *testing.T) {
	svc, db := newTestService(t, []string{"a@x.com"})

	decision := svc.Authorize("a@x.com")

	require.True(t, decision.Allowed)
	require.Empty(t, decision.Reason)
	require.Empty(t, unauthorizedEntries(t, db), "authorized access must not be audited")
}

func TestAuthorizeRejected(t *testing.T) {
	svc, db := newTestService(t, []string{"a@x.com"})

	decision := svc.Authorize("b@x.com")

	require.False(t, decision.Allowed)
	require.Equal(t, ReasonNotInAllowedList, decision.Reason)

	entries := unauthorizedEntries(t, db)
	require.Len(t, entries, 1)
	require.Equal(t, "b@x.com", entries[0].Email)
	require.Equal(t, ReasonNotInAllowedList, entries[0].Reason)
}

func TestAuthorizeEmptyEmail(t *testing.T) {
	svc, db := newTestService(t, []string{"a@x.com"})

	decision := svc.Authorize("")

	require.False(t, decision.Allowed)
	require.Len(t, unauthorizedEntries(t, db), 1)
}

func TestAuthorizeAuditsEveryRejection(t *testing.T) {
	svc, db := newTestService(t, []string{"a@x.com"})

	svc.Authorize("b@x.com")
	svc.Authorize("b@x.com")

	require.Len(t, unauthorizedEntries(t, db), 2)
}

func TestAuthorizeRejectsWhenStoreUnreachable(t *testing.T) {
	svc, db := newTestService(t, []string{"a@x.com"})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	decision := svc.Authorize("a@x.com")
	require.False(t, decision.Allowed, "an unreachable store must reject everyone")
}

func TestAuthorizeExactMatchOnly(t *testing.T) {
	svc, _ := newTestService(t, []string{"a@x.com"})

	require.False(t, svc.Authorize("A@x.com").Allowed)
	require.False(t, svc.Authorize("a@x.com ").Allowed)
}
