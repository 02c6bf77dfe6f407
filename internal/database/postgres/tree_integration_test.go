package postgres

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

func TestTreeRepository_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewTreeRepository(testPool)

	photo := &domain.ImagePayload{Data: []byte{0xff, 0xd8, 0xff, 0xe0}, MIME: "image/jpeg", Width: 320, Height: 240}

	first, err := repo.CreateTree(ctx, domain.TreeDraft{
		X: 400.456, Y: 300.1, Name: "Olive", Color: "#16a34a", Timestamp: "2025-03-21T10:00:00Z", Image: photo,
	})
	require.NoError(t, err)
	assert.Positive(t, first.ID)
	assert.Equal(t, 400.46, first.X)
	assert.Equal(t, domain.ImageLoaded, first.Image.State())
	assert.WithinDuration(t, time.Now(), first.CreatedAt, time.Minute)

	second, err := repo.CreateTree(ctx, domain.TreeDraft{
		X: 120, Y: 80, Name: "Cedar", Color: "#065f46", Timestamp: "2025-03-21T10:05:00Z",
	})
	require.NoError(t, err)

	t.Run("List is newest first without payloads", func(t *testing.T) {
		trees, err := repo.ListTrees(ctx)
		require.NoError(t, err)
		require.Len(t, trees, 2)
		assert.Equal(t, second.ID, trees[0].ID)
		assert.Equal(t, domain.ImageAbsent, trees[0].Image.State())
		assert.Equal(t, first.ID, trees[1].ID)
		assert.Equal(t, domain.ImageNotLoaded, trees[1].Image.State())
	})

	t.Run("Get loads the image", func(t *testing.T) {
		got, err := repo.GetTree(ctx, first.ID)
		require.NoError(t, err)
		payload, ok := got.Image.Payload()
		require.True(t, ok)
		assert.Equal(t, photo.Data, payload.Data)
		assert.Equal(t, "image/jpeg", payload.MIME)
		assert.Equal(t, "Olive", got.Name)
		assert.Equal(t, 300.1, got.Y)
	})

	t.Run("Count", func(t *testing.T) {
		n, err := repo.CountTrees(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteTree(ctx, second.ID))
		assert.ErrorIs(t, repo.DeleteTree(ctx, second.ID), domain.ErrTreeNotFound)

		_, err := repo.GetTree(ctx, second.ID)
		assert.ErrorIs(t, err, domain.ErrTreeNotFound)
	})

	t.Run("Unknown ids", func(t *testing.T) {
		_, err := repo.GetTree(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrTreeNotFound)
		_, err = repo.GetTree(ctx, 1<<40)
		assert.ErrorIs(t, err, domain.ErrTreeNotFound)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}

func TestEncodePoint_RoundsToColumnScale(t *testing.T) {
	x, y, err := encodePoint(domain.Point{X: 12.346, Y: 0.001})
	require.NoError(t, err)

	p, err := decodePoint(x, y)
	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: 12.35, Y: 0}, p)
}

func TestEncodePoint_RejectsNonFinite(t *testing.T) {
	_, _, err := encodePoint(domain.Point{X: math.NaN(), Y: 1})
	assert.ErrorIs(t, err, domain.ErrDatabase)

	_, _, err = encodePoint(domain.Point{X: 1, Y: math.Inf(1)})
	assert.ErrorIs(t, err, domain.ErrDatabase)
}
