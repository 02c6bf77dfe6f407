package tree_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/event"
	"github.com/osse101/GreenMap_Go/internal/geometry"
	"github.com/osse101/GreenMap_Go/internal/metrics"
	"github.com/osse101/GreenMap_Go/internal/tree"
	"github.com/osse101/GreenMap_Go/mocks"
)

var inside = domain.Point{X: 400, Y: 300}

func newTestService(t *testing.T) (tree.Service, *mocks.MockRepositoryTreeRepository, *mocks.MockEventBus) {
	t.Helper()
	repo := mocks.NewMockRepositoryTreeRepository(t)
	bus := mocks.NewMockEventBus(t)
	svc := tree.NewService(repo, bus, geometry.DefaultRegion(), tree.Config{
		CacheSize: 16,
		CacheTTL:  time.Minute,
		Now:       func() time.Time { return time.Date(2025, 3, 21, 10, 0, 0, 0, time.UTC) },
	})
	return svc, repo, bus
}

func TestCreate_DefaultsAndEvent(t *testing.T) {
	svc, repo, bus := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().CreateTree(mock.Anything, domain.TreeDraft{
		X: 400.12, Y: 300.99, Name: "Olive tree", Color: domain.DefaultTreeColor, Timestamp: "2025-03-21T10:00:00.000Z",
	}).Return(&domain.Tree{ID: 7, X: 400.12, Y: 300.99, Name: "Olive tree", Color: domain.DefaultTreeColor}, nil).Once()

	bus.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		p, ok := e.Payload.(domain.TreePlantedPayload)
		return ok && e.Type == event.TreePlanted && p.Tree.ID == 7 && p.SessionID == "sess-1"
	})).Return(nil).Once()

	created, err := svc.Create(ctx, tree.CreateRequest{X: 400.1234, Y: 300.987, Name: "  Olive   tree ", SessionID: "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     tree.CreateRequest
		wantErr error
	}{
		{"blank name", tree.CreateRequest{X: inside.X, Y: inside.Y, Name: "   "}, domain.ErrNameRequired},
		{"bad color", tree.CreateRequest{X: inside.X, Y: inside.Y, Name: "a", Color: "green"}, domain.ErrInvalidColor},
		{"short color", tree.CreateRequest{X: inside.X, Y: inside.Y, Name: "a", Color: "#fff"}, domain.ErrInvalidColor},
		{"outside world", tree.CreateRequest{X: 900, Y: 10, Name: "a"}, domain.ErrInvalidInput},
		{"bad timestamp", tree.CreateRequest{X: inside.X, Y: inside.Y, Name: "a", Timestamp: "yesterday"}, domain.ErrInvalidInput},
		{"outside region", tree.CreateRequest{X: 1, Y: 1, Name: "a"}, domain.ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(t)

			_, err := svc.Create(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "CreateTree", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_KeepsColorAndTimestamp(t *testing.T) {
	svc, repo, bus := newTestService(t)

	repo.EXPECT().CreateTree(mock.Anything, mock.MatchedBy(func(d domain.TreeDraft) bool {
		return d.Color == "#abcdef" && d.Timestamp == "2024-05-01T08:30:00Z"
	})).Return(&domain.Tree{ID: 1}, nil).Once()
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.Create(context.Background(), tree.CreateRequest{X: inside.X, Y: inside.Y, Name: "x", Color: "#ABCDEF", Timestamp: "2024-05-01T08:30:00Z"})
	assert.NoError(t, err)
}

func TestCreate_StoreFailureNoEvent(t *testing.T) {
	svc, repo, bus := newTestService(t)
	repo.EXPECT().CreateTree(mock.Anything, mock.Anything).Return(nil, domain.ErrDatabase).Once()

	_, err := svc.Create(context.Background(), tree.CreateRequest{X: inside.X, Y: inside.Y, Name: "x"})

	assert.ErrorIs(t, err, domain.ErrDatabase)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreate_PublishFailureIsNotFatal(t *testing.T) {
	svc, repo, bus := newTestService(t)
	repo.EXPECT().CreateTree(mock.Anything, mock.Anything).Return(&domain.Tree{ID: 3}, nil).Once()
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("bus down")).Once()

	created, err := svc.Create(context.Background(), tree.CreateRequest{X: inside.X, Y: inside.Y, Name: "x"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestList_CachedUntilWrite(t *testing.T) {
	svc, repo, bus := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().ListTrees(mock.Anything).Return([]domain.Tree{{ID: 1}}, nil).Once()
	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	repo.EXPECT().DeleteTree(mock.Anything, int64(1)).Return(nil).Once()
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, svc.Delete(ctx, 1))

	repo.EXPECT().ListTrees(mock.Anything).Return([]domain.Tree{}, nil).Once()
	after, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, after)

	stats := svc.GetCacheStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
}

func TestList_WriteDuringLoadNotCached(t *testing.T) {
	svc, repo, bus := newTestService(t)
	ctx := context.Background()

	loading := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().ListTrees(mock.Anything).RunAndReturn(func(context.Context) ([]domain.Tree, error) {
		close(loading)
		<-release
		return []domain.Tree{}, nil
	}).Once()

	done := make(chan []domain.Tree)
	go func() {
		trees, err := svc.List(ctx)
		assert.NoError(t, err)
		done <- trees
	}()
	<-loading

	planted := &domain.Tree{ID: 7, X: inside.X, Y: inside.Y, Name: "Oak"}
	repo.EXPECT().CreateTree(mock.Anything, mock.Anything).Return(planted, nil).Once()
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
	_, err := svc.Create(ctx, tree.CreateRequest{X: inside.X, Y: inside.Y, Name: "Oak"})
	require.NoError(t, err)

	close(release)
	assert.Empty(t, <-done, "load started before the write returns its own snapshot")

	repo.EXPECT().ListTrees(mock.Anything).Return([]domain.Tree{*planted}, nil).Once()
	after, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, int64(7), after[0].ID)
}

func TestGet_DeleteDuringLoadNotCached(t *testing.T) {
	svc, repo, bus := newTestService(t)
	ctx := context.Background()

	loading := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().GetTree(mock.Anything, int64(3)).RunAndReturn(func(context.Context, int64) (*domain.Tree, error) {
		close(loading)
		<-release
		return &domain.Tree{ID: 3, Name: "Elm"}, nil
	}).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := svc.Get(ctx, 3)
		assert.NoError(t, err)
	}()
	<-loading

	repo.EXPECT().DeleteTree(mock.Anything, int64(3)).Return(nil).Once()
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, svc.Delete(ctx, 3))

	close(release)
	<-done

	repo.EXPECT().GetTree(mock.Anything, int64(3)).Return(nil, domain.ErrTreeNotFound).Once()
	_, err := svc.Get(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrTreeNotFound)
}

func TestGet_CachesDetail(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	stored := &domain.Tree{ID: 5, Name: "Fig", Image: domain.ImageOf(domain.ImagePayload{Data: []byte{1, 2}, MIME: "image/jpeg"})}
	repo.EXPECT().GetTree(mock.Anything, int64(5)).Return(stored, nil).Once()

	a, err := svc.Get(ctx, 5)
	require.NoError(t, err)
	b, err := svc.Get(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, domain.ImageLoaded, b.Image.State())
}

func TestGet_NotFound(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.EXPECT().GetTree(mock.Anything, int64(9)).Return(nil, domain.ErrTreeNotFound).Twice()

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrTreeNotFound)
	_, err = svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrTreeNotFound, "misses are not cached")
}

func TestDelete_NotFoundNoEvent(t *testing.T) {
	svc, repo, bus := newTestService(t)
	repo.EXPECT().DeleteTree(mock.Anything, int64(4)).Return(domain.ErrTreeNotFound).Once()

	assert.ErrorIs(t, svc.Delete(context.Background(), 4), domain.ErrTreeNotFound)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDelete_EvictsDetail(t *testing.T) {
	svc, repo, bus := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetTree(mock.Anything, int64(2)).Return(&domain.Tree{ID: 2}, nil).Once()
	_, err := svc.Get(ctx, 2)
	require.NoError(t, err)

	repo.EXPECT().DeleteTree(mock.Anything, int64(2)).Return(nil).Once()
	bus.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e event.Event) bool { return e.Type == event.TreeRemoved })).Return(nil).Once()
	require.NoError(t, svc.Delete(ctx, 2))

	repo.EXPECT().GetTree(mock.Anything, int64(2)).Return(nil, domain.ErrTreeNotFound).Once()
	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrTreeNotFound)
}

func TestWrites_CountedOnlyByEventCollector(t *testing.T) {
	svc, repo, bus := newTestService(t)
	ctx := context.Background()
	planted := testutil.ToFloat64(metrics.TreesPlanted.WithLabelValues(metrics.PhotoNone))
	removed := testutil.ToFloat64(metrics.TreesRemoved)

	repo.EXPECT().CreateTree(mock.Anything, mock.Anything).Return(&domain.Tree{ID: 5}, nil).Once()
	repo.EXPECT().DeleteTree(mock.Anything, int64(5)).Return(nil).Once()
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Twice()

	_, err := svc.Create(ctx, tree.CreateRequest{X: inside.X, Y: inside.Y, Name: "Ash"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 5))

	// the mocked bus delivers nothing, so the counters stay put
	assert.Equal(t, planted, testutil.ToFloat64(metrics.TreesPlanted.WithLabelValues(metrics.PhotoNone)))
	assert.Equal(t, removed, testutil.ToFloat64(metrics.TreesRemoved))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Olive tree", tree.NormalizeName("  Olive \t tree\n"))
	// "e" + combining acute composes to a single rune
	assert.Equal(t, "café", tree.NormalizeName("cafe\u0301"))
}

func TestValidationError_Message(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Create(context.Background(), tree.CreateRequest{X: -1, Y: inside.Y, Name: ""})

	var verr *tree.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "name:required")
	assert.Contains(t, verr.Error(), "x:gte")
}
