package gate

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/flowgate/internal/client/client"
	"github.com/dmitrijs2005/flowgate/internal/client/session"
)

func newStore(t *testing.T) (*session.Store, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "session.db")
	db, err := client.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.NewStore(db, nil), dsn
}

func TestStart_NoSessionShowsAuth(t *testing.T) {
	store, _ := newStore(t)
	g := NewGate(store, nil)

	v, err := g.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ViewAuth, v)
	assert.Equal(t, ViewAuth, g.View())
}

func TestStart_PersistedSessionShowsDashboard(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := client.InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, session.NewStore(db, nil).Set(ctx, "tok"))
	require.NoError(t, db.Close())

	db, err = client.InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	g := NewGate(session.NewStore(db, nil), nil)
	v, err := g.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, ViewDashboard, v)
}

func TestGate_FollowsSession(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	g := NewGate(store, nil)

	var seen []View
	g.OnChange(func(v View) { seen = append(seen, v) })

	_, err := g.Start(ctx)
	require.NoError(t, err)
	assert.Empty(t, seen, "initial view is not a change")

	require.NoError(t, store.Set(ctx, "tok-1"))
	assert.Equal(t, ViewDashboard, g.View())

	// replacing the credential keeps the dashboard
	require.NoError(t, store.Set(ctx, "tok-2"))

	require.NoError(t, g.SignOut(ctx))
	assert.Equal(t, ViewAuth, g.View())
	assert.False(t, store.Authenticated())

	assert.Equal(t, []View{ViewDashboard, ViewAuth}, seen)
}

func TestStop_DetachesFromStore(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	g := NewGate(store, nil)
	_, err := g.Start(ctx)
	require.NoError(t, err)

	g.Stop()
	require.NoError(t, store.Set(ctx, "tok"))
	assert.Equal(t, ViewAuth, g.View())
}

type failingSessions struct {
	initErr  error
	clearErr error
}

func (f failingSessions) Initialize(context.Context) (bool, error) { return false, f.initErr }
func (f failingSessions) Clear(context.Context) error              { return f.clearErr }
func (f failingSessions) Subscribe(session.Listener) func()        { return func() {} }

func TestStart_Error(t *testing.T) {
	boom := errors.New("db locked")
	g := NewGate(failingSessions{initErr: boom}, nil)

	v, err := g.Start(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, ViewAuth, v)
}

func TestSignOut_Error(t *testing.T) {
	boom := errors.New("readonly")
	g := NewGate(failingSessions{clearErr: boom}, nil)

	err := g.SignOut(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestView_String(t *testing.T) {
	assert.Equal(t, "auth", ViewAuth.String())
	assert.Equal(t, "dashboard", ViewDashboard.String())
	assert.Equal(t, "unknown", View(9).String())
}
