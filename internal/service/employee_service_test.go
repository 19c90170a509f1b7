package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/NabinS-D/TodoList/internal/domain"
)

func ana() dom.Employee {
	return dom.Employee{Name: "Ana", Surname: "Li", Age: 30, Gender: dom.GenderFemale}
}

func TestEmployeeCreateAndGet(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, ana())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created != ana() {
		t.Fatalf("created fields differ: %+v", created)
	}

	got, err := svc.GetByName(ctx, "Ana")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != ana() {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestEmployeeCreateDuplicateName(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ana()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, ana())
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("duplicate create added a document, have %d", len(list))
	}
}

func TestEmployeeCreateInvalidGender(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), nil)

	e := ana()
	e.Gender = "robot"
	_, err := svc.Create(context.Background(), e)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	list, _ := svc.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("invalid create stored a document")
	}
}

func TestEmployeeGetMissing(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), nil)
	_, err := svc.GetByName(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEmployeeUpdateMergesFields(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ana()); err != nil {
		t.Fatalf("create: %v", err)
	}

	age := 31
	updated, err := svc.Update(ctx, "Ana", nil, nil, &age, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Age != 31 {
		t.Fatalf("age not updated: %d", updated.Age)
	}
	if updated.Surname != "Li" || updated.Gender != dom.GenderFemale {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestEmployeeUpdateMissing(t *testing.T) {
	fake := newFakeEmployeeRepo()
	svc := NewEmployeeService(fake, nil)

	surname := "Smith"
	_, err := svc.Update(context.Background(), "nobody", nil, &surname, nil, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(fake.employees) != 0 {
		t.Fatalf("update of missing employee created a document")
	}
}

func TestEmployeeRenameConflict(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ana()); err != nil {
		t.Fatalf("create: %v", err)
	}
	bob := dom.Employee{Name: "Bob", Surname: "Li", Age: 40, Gender: dom.GenderMale}
	if _, err := svc.Create(ctx, bob); err != nil {
		t.Fatalf("create: %v", err)
	}

	newName := "Ana"
	_, err := svc.Update(ctx, "Bob", &newName, nil, nil, nil)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	got, err := svc.GetByName(ctx, "Bob")
	if err != nil || got != bob {
		t.Fatalf("conflicting rename changed the document: %+v, %v", got, err)
	}
}

func TestEmployeeDelete(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ana()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, "Ana"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByName(ctx, "Ana"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted employee still found, err=%v", err)
	}
	if err := svc.Delete(ctx, "Ana"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestEmployeeDeleteAll(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), nil)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		e := ana()
		e.Name = name
		if _, err := svc.Create(ctx, e); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	n, err := svc.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 deleted, got %d", n)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("list after delete all not empty: %d", len(list))
	}

	// empty collection still succeeds
	n, err = svc.DeleteAll(ctx)
	if err != nil || n != 0 {
		t.Fatalf("delete all on empty: n=%d err=%v", n, err)
	}
}
