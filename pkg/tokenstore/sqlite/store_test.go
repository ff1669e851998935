package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harborchat/harbor/pkg/chatsdk"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.ApplyMigrations())
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Get(ctx)
	require.ErrorIs(t, err, chatsdk.ErrNoToken)

	token := chatsdk.Token{UserID: "u1", AuthToken: "tok-1"}
	require.NoError(t, store.Save(ctx, token))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, token, got)
}

func TestStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, chatsdk.Token{UserID: "u1", AuthToken: "tok-1"}))
	require.NoError(t, store.Save(ctx, chatsdk.Token{UserID: "u2", AuthToken: "tok-2"}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, chatsdk.Token{UserID: "u2", AuthToken: "tok-2"}, got)
}

func TestStorePing(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Ping(context.Background()))
}
