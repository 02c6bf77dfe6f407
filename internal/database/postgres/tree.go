package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GreenMap_Go/internal/database/generated"
	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/logger"
)

// TreeRepository implements repository.TreeRepository
type TreeRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewTreeRepository creates a new TreeRepository
func NewTreeRepository(db *pgxpool.Pool) *TreeRepository {
	return &TreeRepository{
		db: db,
		q:  generated.New(db),
	}
}

// ListTrees returns all trees newest first without image payloads
func (r *TreeRepository) ListTrees(ctx context.Context) ([]domain.Tree, error) {
	rows, err := r.q.ListTrees(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list trees: %v", domain.ErrDatabase, err)
	}

	trees := make([]domain.Tree, 0, len(rows))
	for _, row := range rows {
		t, err := mapTree(row.ID, row.X, row.Y, row.Name, row.Color, row.Timestamp, row.CreatedAt)
		if err != nil {
			return nil, err
		}
		if row.HasImage {
			t.Image = domain.ImageNotFetched()
		}
		trees = append(trees, t)
	}
	return trees, nil
}

// GetTree returns a tree with its image
func (r *TreeRepository) GetTree(ctx context.Context, id int64) (*domain.Tree, error) {
	tid, err := treeID(id)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetTree(ctx, tid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTreeNotFound
		}
		return nil, fmt.Errorf("%w: failed to get tree %d: %v", domain.ErrDatabase, id, err)
	}
	return mapStoredTree(ctx, row)
}

// CreateTree inserts a tree and returns the stored row
func (r *TreeRepository) CreateTree(ctx context.Context, draft domain.TreeDraft) (*domain.Tree, error) {
	x, y, err := encodePoint(domain.Point{X: draft.X, Y: draft.Y})
	if err != nil {
		return nil, err
	}

	params := generated.CreateTreeParams{
		X:         x,
		Y:         y,
		Name:      draft.Name,
		Color:     draft.Color,
		Timestamp: draft.Timestamp,
	}
	if draft.Image != nil {
		params.Image = pgtype.Text{String: draft.Image.DataURL(), Valid: true}
	}

	row, err := r.q.CreateTree(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create tree: %v", domain.ErrDatabase, err)
	}

	tree, err := mapStoredTree(ctx, row)
	if err != nil {
		return nil, err
	}
	// Keep the admitted payload so dimensions survive the round trip
	if draft.Image != nil {
		tree.Image = domain.ImageOf(*draft.Image)
	}
	return tree, nil
}

// DeleteTree removes a tree by id
func (r *TreeRepository) DeleteTree(ctx context.Context, id int64) error {
	tid, err := treeID(id)
	if err != nil {
		return err
	}

	affected, err := r.q.DeleteTree(ctx, tid)
	if err != nil {
		return fmt.Errorf("%w: failed to delete tree %d: %v", domain.ErrDatabase, id, err)
	}
	if affected == 0 {
		return domain.ErrTreeNotFound
	}
	return nil
}

// CountTrees returns the number of stored trees
func (r *TreeRepository) CountTrees(ctx context.Context) (int64, error) {
	n, err := r.q.CountTrees(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count trees: %v", domain.ErrDatabase, err)
	}
	return n, nil
}

// Ping checks the pool
func (r *TreeRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func mapStoredTree(ctx context.Context, row generated.Tree) (*domain.Tree, error) {
	t, err := mapTree(row.ID, row.X, row.Y, row.Name, row.Color, row.Timestamp, row.CreatedAt)
	if err != nil {
		return nil, err
	}
	if row.Image.Valid {
		payload, err := domain.ParseDataURL(row.Image.String)
		if err != nil {
			// A malformed stored image should not hide the tree itself
			logger.FromContext(ctx).Warn(LogMsgStoredImageInvalid, "tree_id", row.ID, "error", err)
		} else {
			t.Image = domain.ImageOf(payload)
		}
	}
	return &t, nil
}

func mapTree(id int32, x, y pgtype.Numeric, name, color, timestamp string, createdAt pgtype.Timestamptz) (domain.Tree, error) {
	p, err := decodePoint(x, y)
	if err != nil {
		return domain.Tree{}, err
	}
	return domain.Tree{
		ID:        int64(id),
		X:         p.X,
		Y:         p.Y,
		Name:      name,
		Color:     color,
		Image:     domain.NoImage(),
		Timestamp: timestamp,
		CreatedAt: createdAt.Time,
	}, nil
}

// treeID narrows an id to the SERIAL column type. Ids that cannot exist are
// reported as not found.
func treeID(id int64) (int32, error) {
	if id <= 0 || id > math.MaxInt32 {
		return 0, domain.ErrTreeNotFound
	}
	return int32(id), nil
}
