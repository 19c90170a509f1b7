package service

import (
	"context"
	"fmt"
	"sync"

	dom "github.com/NabinS-D/TodoList/internal/domain"
	"github.com/NabinS-D/TodoList/internal/repo"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeEmployeeRepo keeps employees in insertion order in a slice, so
// duplicate names behave like the store: first match wins.
type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees []dom.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e dom.Employee) (dom.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByName(_ context.Context, name string) (dom.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.Name == name {
			return e, nil
		}
	}
	return dom.Employee{}, mongo.ErrNoDocuments
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]dom.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dom.Employee, len(f.employees))
	copy(out, f.employees)
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, name string, patch dom.Employee) (dom.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.employees {
		if e.Name == name {
			f.employees[i] = patch
			return patch, nil
		}
	}
	return dom.Employee{}, mongo.ErrNoDocuments
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.employees {
		if e.Name == name {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeEmployeeRepo) DeleteAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := int64(len(f.employees))
	f.employees = nil
	return n, nil
}

type fakeTodoRepo struct {
	mu    sync.Mutex
	todos map[string]dom.Todo
	order []string
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: make(map[string]dom.Todo)}
}

func (f *fakeTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = primitive.NewObjectID().Hex()
	f.todos[t.ID] = t
	f.order = append(f.order, t.ID)
	return t, nil
}

func (f *fakeTodoRepo) GetByID(_ context.Context, id string) (dom.Todo, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return dom.Todo{}, fmt.Errorf("%w: %q", repo.ErrInvalidID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.todos[id]
	if !ok {
		return dom.Todo{}, mongo.ErrNoDocuments
	}
	return t, nil
}

func (f *fakeTodoRepo) List(_ context.Context) ([]dom.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dom.Todo, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.todos[id])
	}
	return out, nil
}

func (f *fakeTodoRepo) Update(_ context.Context, id string, patch dom.Todo) (dom.Todo, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return dom.Todo{}, fmt.Errorf("%w: %q", repo.ErrInvalidID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.todos[id]
	if !ok {
		return dom.Todo{}, mongo.ErrNoDocuments
	}
	existing.Title = patch.Title
	existing.Description = patch.Description
	existing.Status = patch.Status
	existing.Priority = patch.Priority
	existing.UpdatedAt = patch.UpdatedAt
	f.todos[id] = existing
	return existing, nil
}

func (f *fakeTodoRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("%w: %q", repo.ErrInvalidID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.todos[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.todos, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeTodoRepo) DeleteAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := int64(len(f.todos))
	f.todos = make(map[string]dom.Todo)
	f.order = nil
	return n, nil
}

var (
	_ repo.EmployeeRepo = (*fakeEmployeeRepo)(nil)
	_ repo.TodoRepo     = (*fakeTodoRepo)(nil)
)
