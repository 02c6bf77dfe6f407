package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/logger"
)

// TreeRepository implements repository.TreeRepository on SQLite
type TreeRepository struct {
	db *sql.DB
}

// NewTreeRepository wraps an opened database
func NewTreeRepository(db *sql.DB) *TreeRepository {
	return &TreeRepository{db: db}
}

func (r *TreeRepository) ListTrees(ctx context.Context) ([]domain.Tree, error) {
	rows, err := r.db.QueryContext(ctx, queryListTrees)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list trees: %v", domain.ErrDatabase, err)
	}
	defer rows.Close()

	var trees []domain.Tree
	for rows.Next() {
		var (
			t         domain.Tree
			createdAt string
			hasImage  bool
		)
		if err := rows.Scan(&t.ID, &t.X, &t.Y, &t.Name, &t.Color, &t.Timestamp, &createdAt, &hasImage); err != nil {
			return nil, fmt.Errorf("%w: failed to scan tree: %v", domain.ErrDatabase, err)
		}
		if t.CreatedAt, err = parseCreatedAt(createdAt); err != nil {
			return nil, err
		}
		t.Image = domain.NoImage()
		if hasImage {
			t.Image = domain.ImageNotFetched()
		}
		trees = append(trees, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to list trees: %v", domain.ErrDatabase, err)
	}
	return trees, nil
}

func (r *TreeRepository) GetTree(ctx context.Context, id int64) (*domain.Tree, error) {
	var (
		t         domain.Tree
		image     sql.NullString
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, queryGetTree, id).
		Scan(&t.ID, &t.X, &t.Y, &t.Name, &image, &t.Color, &t.Timestamp, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTreeNotFound
		}
		return nil, fmt.Errorf("%w: failed to get tree %d: %v", domain.ErrDatabase, id, err)
	}
	if t.CreatedAt, err = parseCreatedAt(createdAt); err != nil {
		return nil, err
	}

	t.Image = domain.NoImage()
	if image.Valid {
		payload, err := domain.ParseDataURL(image.String)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgStoredImageInvalid, "tree_id", id, "error", err)
		} else {
			t.Image = domain.ImageOf(payload)
		}
	}
	return &t, nil
}

func (r *TreeRepository) CreateTree(ctx context.Context, draft domain.TreeDraft) (*domain.Tree, error) {
	var image sql.NullString
	if draft.Image != nil {
		image = sql.NullString{String: draft.Image.DataURL(), Valid: true}
	}

	t := domain.Tree{
		X:         roundCoordinate(draft.X),
		Y:         roundCoordinate(draft.Y),
		Name:      draft.Name,
		Color:     draft.Color,
		Timestamp: draft.Timestamp,
		Image:     domain.NoImage(),
	}

	var createdAt string
	err := r.db.QueryRowContext(ctx, queryCreateTree, t.X, t.Y, t.Name, image, t.Color, t.Timestamp).
		Scan(&t.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create tree: %v", domain.ErrDatabase, err)
	}
	if t.CreatedAt, err = parseCreatedAt(createdAt); err != nil {
		return nil, err
	}
	if draft.Image != nil {
		t.Image = domain.ImageOf(*draft.Image)
	}
	return &t, nil
}

func (r *TreeRepository) DeleteTree(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, queryDeleteTree, id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete tree %d: %v", domain.ErrDatabase, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to delete tree %d: %v", domain.ErrDatabase, id, err)
	}
	if n == 0 {
		return domain.ErrTreeNotFound
	}
	return nil
}

func (r *TreeRepository) CountTrees(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, queryCountTrees).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: failed to count trees: %v", domain.ErrDatabase, err)
	}
	return n, nil
}

func (r *TreeRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func parseCreatedAt(s string) (time.Time, error) {
	t, err := time.Parse(createdAtLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad created_at %q: %v", domain.ErrDatabase, s, err)
	}
	return t, nil
}

func roundCoordinate(v float64) float64 {
	return math.Round(v*100) / 100
}
