// Package tree is the tree service: validation, caching and events on top
// of the Tree Store repository.
package tree

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/event"
	"github.com/osse101/GreenMap_Go/internal/geometry"
	"github.com/osse101/GreenMap_Go/internal/logger"
	"github.com/osse101/GreenMap_Go/internal/repository"
)

// Service defines the interface for tree operations
type Service interface {
	List(ctx context.Context) ([]domain.Tree, error)
	Get(ctx context.Context, id int64) (*domain.Tree, error)
	Create(ctx context.Context, req CreateRequest) (*domain.Tree, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	Boundary() geometry.Boundary
	GetCacheStats() CacheStats
}

type service struct {
	repo     repository.TreeRepository
	bus      event.Bus
	boundary geometry.Boundary
	cache    *treeCache
	validate *validator.Validate
	loads    singleflight.Group
	now      func() time.Time
}

// Config tunes the detail cache. Now defaults to time.Now.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
	Now       func() time.Time
}

// NewService creates a tree service. bus may be nil.
func NewService(repo repository.TreeRepository, bus event.Bus, boundary geometry.Boundary, cfg Config) Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &service{
		repo:     repo,
		bus:      bus,
		boundary: boundary,
		cache:    newTreeCache(cfg.CacheSize, cfg.CacheTTL),
		validate: newValidator(),
		now:      cfg.Now,
	}
}

// List returns all trees newest first. Concurrent misses share one store read.
func (s *service) List(ctx context.Context) ([]domain.Tree, error) {
	if trees, ok := s.cache.List(); ok {
		return trees, nil
	}

	v, err, _ := s.loads.Do(listCacheKey, func() (interface{}, error) {
		gen := s.cache.Generation()
		trees, err := s.repo.ListTrees(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.cache.SetList(gen, trees)
		return trees, nil
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListFailed, "error", err)
		return nil, err
	}
	return v.([]domain.Tree), nil
}

// Get returns a tree with its image, served from cache when possible
func (s *service) Get(ctx context.Context, id int64) (*domain.Tree, error) {
	if t, ok := s.cache.Get(id); ok {
		return &t, nil
	}

	v, err, _ := s.loads.Do(strconv.FormatInt(id, 10), func() (interface{}, error) {
		gen := s.cache.Generation()
		t, err := s.repo.GetTree(context.WithoutCancel(ctx), id)
		if err != nil {
			return nil, err
		}
		s.cache.SetLoaded(gen, *t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	t := *v.(*domain.Tree)
	return &t, nil
}

// Create validates and stores a tree, then announces it
func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.Tree, error) {
	log := logger.FromContext(ctx)

	draft, err := s.prepare(req)
	if err != nil {
		log.Info(LogMsgValidationFailed, "error", err)
		return nil, err
	}

	created, err := s.repo.CreateTree(ctx, draft)
	if err != nil {
		log.Error(LogMsgCreateFailed, "error", err)
		return nil, err
	}
	s.invalidate(0)
	s.cache.Set(*created)

	log.Info(LogMsgTreeCreated, "tree_id", created.ID, "x", created.X, "y", created.Y, "has_image", created.Image.Exists())
	s.publish(ctx, event.NewTreePlantedEvent(*created, req.SessionID))
	return created, nil
}

// Delete removes a tree and announces the removal
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTree(ctx, id); err != nil {
		return err
	}
	s.invalidate(id)

	logger.FromContext(ctx).Info(LogMsgTreeDeleted, "tree_id", id)
	s.publish(ctx, event.NewTreeRemovedEvent(id))
	return nil
}

// invalidate drops cached state touched by a write and detaches in-flight
// loads, so callers arriving after the write read the store again.
func (s *service) invalidate(id int64) {
	s.cache.Invalidate(id)
	s.loads.Forget(listCacheKey)
	if id > 0 {
		s.loads.Forget(strconv.FormatInt(id, 10))
	}
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.CountTrees(ctx)
}

func (s *service) Boundary() geometry.Boundary {
	return s.boundary
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.Stats()
}

// prepare normalizes and validates a request into a draft
func (s *service) prepare(req CreateRequest) (domain.TreeDraft, error) {
	req.Name = NormalizeName(req.Name)
	req.Color = NormalizeColor(req.Color)

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return domain.TreeDraft{}, &ValidationError{Fields: verrs}
		}
		return domain.TreeDraft{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	x, y := roundCoordinate(req.X), roundCoordinate(req.Y)
	if s.boundary.Len() > 0 && !s.boundary.Contains(domain.Point{X: x, Y: y}) {
		return domain.TreeDraft{}, domain.ErrOutOfBounds
	}

	if req.Color == "" {
		req.Color = domain.DefaultTreeColor
	}
	if req.Timestamp == "" {
		req.Timestamp = s.now().UTC().Format(timestampLayout)
	}

	return domain.TreeDraft{
		X:         x,
		Y:         y,
		Name:      req.Name,
		Color:     req.Color,
		Timestamp: req.Timestamp,
		Image:     req.Image,
	}, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	evt = event.Stamp(ctx, evt)
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func roundCoordinate(v float64) float64 {
	return math.Round(v*coordinateScale) / coordinateScale
}
