package domain

import (
	"errors"
	"testing"
)

func TestAddImages_UpToBoundary(t *testing.T) {
	current := []string{"a.jpg", "b.jpg", "c.jpg"}
	out, err := AddImages(current, []string{"d.jpg", "e.jpg"})
	if err != nil {
		t.Fatalf("expected boundary (3+2) to be accepted, got: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 images, got %d", len(out))
	}
	// Insertion order must be preserved.
	want := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"}
	for i, ref := range want {
		if out[i] != ref {
			t.Errorf("position %d: expected %q, got %q", i, ref, out[i])
		}
	}
}

func TestAddImages_OverLimit(t *testing.T) {
	current := []string{"a.jpg", "b.jpg", "c.jpg"}
	if _, err := AddImages(current, []string{"d.jpg", "e.jpg", "f.jpg"}); !errors.Is(err, ErrImageLimit) {
		t.Fatalf("expected ErrImageLimit for 3+3, got: %v", err)
	}
}

func TestAddImages_DoesNotMutateCurrent(t *testing.T) {
	current := []string{"a.jpg"}
	out, err := AddImages(current, []string{"b.jpg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out[0] = "mutated"
	if current[0] != "a.jpg" {
		t.Fatal("AddImages must not alias the input slice")
	}
}

func TestRemoveImage_Present(t *testing.T) {
	out := RemoveImage([]string{"a.jpg", "b.jpg", "c.jpg"}, "b.jpg")
	if len(out) != 2 || out[0] != "a.jpg" || out[1] != "c.jpg" {
		t.Fatalf("unexpected result: %v", out)
	}
}

func TestRemoveImage_AbsentIsNoop(t *testing.T) {
	current := []string{"a.jpg", "b.jpg"}
	out := RemoveImage(current, "zzz.jpg")
	if len(out) != len(current) {
		t.Fatalf("removing an absent ref must be a no-op, got %v", out)
	}
	for i := range current {
		if out[i] != current[i] {
			t.Fatalf("list changed at %d: %v", i, out)
		}
	}
}

func TestPropertyType_Valid(t *testing.T) {
	for _, tipo := range []PropertyType{TypeDepartamento, TypeCasa, TypeEstudio, TypeLoft, TypeMonoambiente} {
		if !tipo.Valid() {
			t.Errorf("%q should be valid", tipo)
		}
	}
	if PropertyType("Castillo").Valid() {
		t.Error("unknown type should be invalid")
	}
}

func TestListing_EditableBy(t *testing.T) {
	l := &Listing{OwnerID: "u1"}
	if !l.EditableBy("u1", RoleLocador) {
		t.Error("owner must be able to edit")
	}
	if !l.EditableBy("other", RoleAdmin) {
		t.Error("admin must be able to edit")
	}
	if l.EditableBy("other", RoleLocatario) {
		t.Error("non-owner must not edit")
	}
}

func TestFieldErrors_IsValidation(t *testing.T) {
	err := FieldErrors{"precio": "must be a non-negative number"}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("FieldErrors must match ErrValidation")
	}
}
