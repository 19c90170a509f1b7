package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NabinS-D/TodoList/internal/cache"
	dom "github.com/NabinS-D/TodoList/internal/domain"
	"github.com/NabinS-D/TodoList/internal/repo"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/singleflight"
)

type EmployeeService struct {
	repo  repo.EmployeeRepo
	cache *cache.EmployeeCache
	sf    singleflight.Group
}

// NewEmployeeService creates an EmployeeService. If c is nil, caching is disabled.
func NewEmployeeService(r repo.EmployeeRepo, c *cache.EmployeeCache) *EmployeeService {
	return &EmployeeService{repo: r, cache: c}
}

// Create inserts a new employee. Name acts as the lookup key, so an
// existing document with the same name rejects the insert. The check is
// find-then-insert with no store-level constraint behind it.
func (s *EmployeeService) Create(ctx context.Context, e dom.Employee) (dom.Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Surname = strings.TrimSpace(e.Surname)

	if !e.Gender.Valid() {
		return dom.Employee{}, fmt.Errorf("%w: gender must be one of male, female, other", ErrValidation)
	}
	if e.Age < 0 {
		return dom.Employee{}, fmt.Errorf("%w: age must not be negative", ErrValidation)
	}

	_, err := s.repo.GetByName(ctx, e.Name)
	if err == nil {
		return dom.Employee{}, fmt.Errorf("%w: employee %q", ErrAlreadyExists, e.Name)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return dom.Employee{}, err
	}

	out, err := s.repo.Create(ctx, e)
	if err != nil {
		return dom.Employee{}, err
	}
	s.invalidateCache(ctx)
	return out, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]dom.Employee, error) {
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
		return v.([]dom.Employee), nil
	}
	return s.repo.List(ctx)
}

func (s *EmployeeService) GetByName(ctx context.Context, name string) (dom.Employee, error) {
	e, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.Employee{}, ErrNotFound
		}
		return dom.Employee{}, err
	}
	return e, nil
}

// Update merges the supplied fields into the stored document. A rename is
// allowed but rejected when the target name is already taken.
func (s *EmployeeService) Update(ctx context.Context, name string, newName, surname *string, age *int, gender *string) (dom.Employee, error) {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.Employee{}, ErrNotFound
		}
		return dom.Employee{}, err
	}

	patch := existing
	if newName != nil {
		patch.Name = strings.TrimSpace(*newName)
	}
	if surname != nil {
		patch.Surname = strings.TrimSpace(*surname)
	}
	if age != nil {
		if *age < 0 {
			return dom.Employee{}, fmt.Errorf("%w: age must not be negative", ErrValidation)
		}
		patch.Age = *age
	}
	if gender != nil {
		g := dom.Gender(*gender)
		if !g.Valid() {
			return dom.Employee{}, fmt.Errorf("%w: gender must be one of male, female, other", ErrValidation)
		}
		patch.Gender = g
	}

	if patch.Name != name {
		_, err := s.repo.GetByName(ctx, patch.Name)
		if err == nil {
			return dom.Employee{}, fmt.Errorf("%w: employee %q", ErrAlreadyExists, patch.Name)
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return dom.Employee{}, err
		}
	}

	out, err := s.repo.Update(ctx, name, patch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.Employee{}, ErrNotFound
		}
		return dom.Employee{}, err
	}
	s.invalidateCache(ctx)
	return out, nil
}

func (s *EmployeeService) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// DeleteAll removes every employee and reports how many were removed.
// Succeeds with a zero count on an empty collection.
func (s *EmployeeService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.invalidateCache(ctx)
	return n, nil
}

func (s *EmployeeService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
