package repository

import (
	"context"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// TreeRepository is the Tree Store collaborator
type TreeRepository interface {
	// ListTrees returns every tree newest first. Images are never loaded;
	// each tree carries NotLoaded or Absent.
	ListTrees(ctx context.Context) ([]domain.Tree, error)

	// GetTree returns one tree including its image. Returns
	// domain.ErrTreeNotFound when the id is unknown.
	GetTree(ctx context.Context, id int64) (*domain.Tree, error)

	// CreateTree stores a draft and returns it with the assigned id and
	// creation time.
	CreateTree(ctx context.Context, draft domain.TreeDraft) (*domain.Tree, error)

	// DeleteTree removes a tree. Returns domain.ErrTreeNotFound when the id
	// is unknown.
	DeleteTree(ctx context.Context, id int64) error

	CountTrees(ctx context.Context) (int64, error)

	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
}
