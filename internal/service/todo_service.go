package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NabinS-D/TodoList/internal/cache"
	dom "github.com/NabinS-D/TodoList/internal/domain"
	"github.com/NabinS-D/TodoList/internal/repo"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/singleflight"
)

type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

// Create inserts a todo with both timestamps set to the same instant.
// Empty status and priority fall back to pending and medium.
func (s *TodoService) Create(ctx context.Context, title, desc, status, priority string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)

	st := dom.Status(status)
	if status == "" {
		st = dom.StatusPending
	}
	if !st.Valid() {
		return dom.Todo{}, fmt.Errorf("%w: status must be one of pending, in_progress, completed", ErrValidation)
	}
	pr := dom.Priority(priority)
	if priority == "" {
		pr = dom.PriorityMedium
	}
	if !pr.Valid() {
		return dom.Todo{}, fmt.Errorf("%w: priority must be one of low, medium, high", ErrValidation)
	}

	now := time.Now().UTC()
	t, err := s.repo.Create(ctx, dom.Todo{
		Title:       title,
		Description: desc,
		Status:      st,
		Priority:    pr,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx)
}

func (s *TodoService) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Todo{}, mapTodoErr(err)
	}
	return t, nil
}

// Update merges the supplied fields into the stored document and refreshes
// updated_at unconditionally. No transition rules apply to status: any
// valid value may replace any other.
func (s *TodoService) Update(ctx context.Context, id string, title, desc, status, priority *string) (dom.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Todo{}, mapTodoErr(err)
	}

	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if status != nil {
		st := dom.Status(*status)
		if !st.Valid() {
			return dom.Todo{}, fmt.Errorf("%w: status must be one of pending, in_progress, completed", ErrValidation)
		}
		patch.Status = st
	}
	if priority != nil {
		pr := dom.Priority(*priority)
		if !pr.Valid() {
			return dom.Todo{}, fmt.Errorf("%w: priority must be one of low, medium, high", ErrValidation)
		}
		patch.Priority = pr
	}
	patch.UpdatedAt = time.Now().UTC()

	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return dom.Todo{}, mapTodoErr(err)
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapTodoErr(err)
	}
	s.invalidateCache(ctx)
	return nil
}

// DeleteAll removes every todo and reports how many were removed.
func (s *TodoService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.invalidateCache(ctx)
	return n, nil
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func mapTodoErr(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, repo.ErrInvalidID):
		return fmt.Errorf("%w: todo id must be a 24-character hex string", ErrValidation)
	}
	return err
}
