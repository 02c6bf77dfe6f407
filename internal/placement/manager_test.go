package placement_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/geometry"
	"github.com/osse101/GreenMap_Go/internal/placement"
	"github.com/osse101/GreenMap_Go/mocks"
)

func newManager(t *testing.T, cfg placement.ManagerConfig) *placement.Manager {
	t.Helper()
	trees := mocks.NewMockTreeService(t)
	trees.EXPECT().Boundary().Return(geometry.DefaultRegion()).Maybe()
	return placement.NewManager(trees, mocks.NewMockAdmissionAdmitter(t), cfg)
}

func TestManager_CreateAndGet(t *testing.T) {
	m := newManager(t, placement.ManagerConfig{})
	ctx := context.Background()

	s := m.Create(ctx)
	require.NotEmpty(t, s.ID())
	assert.Equal(t, placement.StateIdle, s.State())

	got, err := m.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Len())

	other := m.Create(ctx)
	assert.NotEqual(t, s.ID(), other.ID())
	assert.Equal(t, 2, m.Len())
}

func TestManager_NotFound(t *testing.T) {
	m := newManager(t, placement.ManagerConfig{})
	_, err := m.Get("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_Remove(t *testing.T) {
	m := newManager(t, placement.ManagerConfig{})
	ctx := context.Background()
	s := m.Create(ctx)

	assert.True(t, m.Remove(ctx, s.ID()))
	assert.False(t, m.Remove(ctx, s.ID()))
	_, err := m.Get(s.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_CapacityEvictsLeastRecent(t *testing.T) {
	m := newManager(t, placement.ManagerConfig{Capacity: 2})
	ctx := context.Background()

	first := m.Create(ctx)
	second := m.Create(ctx)
	_, err := m.Get(first.ID())
	require.NoError(t, err)
	m.Create(ctx)

	_, err = m.Get(second.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = m.Get(first.ID())
	assert.NoError(t, err)
}

func TestManager_TTLExpiry(t *testing.T) {
	m := newManager(t, placement.ManagerConfig{TTL: 30 * time.Millisecond})
	s := m.Create(context.Background())

	time.Sleep(80 * time.Millisecond)

	_, err := m.Get(s.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
