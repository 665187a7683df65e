package audit

import (
	"context"
	"fmt"
	"testing"

	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var actor = models.User{ID: "u1", FullName: "Jamal Uddin"}

func TestAppend_PrependsEntry(t *testing.T) {
	store := database.NewMemStore()
	ctx := context.Background()

	require.NoError(t, Append(ctx, store, actor, models.AuditCreate, models.EntityProduct, "first"))
	require.NoError(t, Append(ctx, store, actor, models.AuditUpdate, models.EntityProduct, "second"))

	logs, err := database.AuditLogs(ctx, store)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, "second", logs[0].Details, "most recent first")
	assert.Equal(t, "first", logs[1].Details)
	assert.Equal(t, models.AuditUpdate, logs[0].Action)
	assert.Equal(t, actor.ID, logs[0].UserID)
	assert.Equal(t, actor.FullName, logs[0].UserName)
	assert.NotEmpty(t, logs[0].ID)
	assert.False(t, logs[0].Timestamp.IsZero())
	assert.False(t, logs[0].Timestamp.Before(logs[1].Timestamp))
}

func TestAppend_CapsAtMaxEntries(t *testing.T) {
	store := database.NewMemStore()
	ctx := context.Background()

	for i := 0; i < MaxEntries+25; i++ {
		require.NoError(t, Append(ctx, store, actor, models.AuditSystem, models.EntitySystem, fmt.Sprintf("event %d", i)))
	}

	logs, err := database.AuditLogs(ctx, store)
	require.NoError(t, err)
	require.Len(t, logs, MaxEntries, "length never exceeds the cap")

	// Oldest entries were silently dropped; the newest survive.
	assert.Equal(t, fmt.Sprintf("event %d", MaxEntries+24), logs[0].Details)
	assert.Equal(t, "event 25", logs[MaxEntries-1].Details)
}

func TestAppend_StoreFailurePropagates(t *testing.T) {
	store := database.NewMemStore()
	store.FailWrites = true

	err := Append(context.Background(), store, actor, models.AuditCreate, models.EntitySale, "x")
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}
