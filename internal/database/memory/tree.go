// Package memory is a process-local tree store used for demos and tests.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// TreeRepository keeps trees in a map guarded by a RWMutex
type TreeRepository struct {
	mu     sync.RWMutex
	trees  map[int64]domain.Tree
	nextID int64
	now    func() time.Time
}

// NewTreeRepository returns an empty store
func NewTreeRepository() *TreeRepository {
	return &TreeRepository{
		trees:  make(map[int64]domain.Tree),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *TreeRepository) ListTrees(ctx context.Context) ([]domain.Tree, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Tree, 0, len(r.trees))
	for _, t := range r.trees {
		if t.Image.Exists() {
			t.Image = domain.ImageNotFetched()
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *TreeRepository) GetTree(ctx context.Context, id int64) (*domain.Tree, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trees[id]
	if !ok {
		return nil, domain.ErrTreeNotFound
	}
	return &t, nil
}

func (r *TreeRepository) CreateTree(ctx context.Context, draft domain.TreeDraft) (*domain.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t := domain.Tree{
		ID:        r.nextID,
		X:         math.Round(draft.X*100) / 100,
		Y:         math.Round(draft.Y*100) / 100,
		Name:      draft.Name,
		Color:     draft.Color,
		Timestamp: draft.Timestamp,
		Image:     domain.NoImage(),
		CreatedAt: r.now().UTC(),
	}
	if draft.Image != nil {
		p := *draft.Image
		p.Data = append([]byte(nil), p.Data...)
		t.Image = domain.ImageOf(p)
	}
	r.trees[t.ID] = t
	r.nextID++
	return &t, nil
}

func (r *TreeRepository) DeleteTree(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trees[id]; !ok {
		return domain.ErrTreeNotFound
	}
	delete(r.trees, id)
	return nil
}

func (r *TreeRepository) CountTrees(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.trees)), nil
}

func (r *TreeRepository) Ping(ctx context.Context) error {
	return nil
}
