package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// =========== Mock Repository ===========

type mockProfileRepo struct {
	store map[uuid.UUID]*Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{store: make(map[uuid.UUID]*Profile)}
}

func (m *mockProfileRepo) Upsert(_ context.Context, p *Profile) error {
	cp := *p
	m.store[p.OwnerID] = &cp
	return nil
}

func (m *mockProfileRepo) Get(_ context.Context, owner uuid.UUID) (*Profile, error) {
	p, ok := m.store[owner]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

// =========== Tests ===========

func TestService_UpsertThenGet(t *testing.T) {
	svc := NewService(newMockProfileRepo())
	ctx := context.Background()
	owner := uuid.New()

	p := &Profile{
		OwnerID:  owner,
		FullName: strPtr("Jane Roe"),
		Age:      intPtr(54),
		Weight:   floatPtr(68.5),
	}
	if err := svc.Upsert(ctx, p); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := svc.Get(ctx, owner)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.FullName == nil || *got.FullName != "Jane Roe" {
		t.Errorf("unexpected profile: %+v", got)
	}

	// Second save replaces, it does not duplicate.
	p.FullName = strPtr("Jane R. Roe")
	if err := svc.Upsert(ctx, p); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	got, _ = svc.Get(ctx, owner)
	if *got.FullName != "Jane R. Roe" {
		t.Errorf("expected replaced name, got %q", *got.FullName)
	}
}

func TestService_GetMissingProfileIsNilNil(t *testing.T) {
	svc := NewService(newMockProfileRepo())

	got, err := svc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error for missing profile, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil profile, got %+v", got)
	}
}

func TestService_UpsertValidation(t *testing.T) {
	svc := NewService(newMockProfileRepo())
	ctx := context.Background()

	if err := svc.Upsert(ctx, &Profile{}); err == nil {
		t.Error("expected error for missing owner id, got none")
	}
	if err := svc.Upsert(ctx, &Profile{OwnerID: uuid.New(), Age: intPtr(200)}); err == nil {
		t.Error("expected error for out-of-range age, got none")
	}
	if err := svc.Upsert(ctx, &Profile{OwnerID: uuid.New(), Weight: floatPtr(-2)}); err == nil {
		t.Error("expected error for non-positive weight, got none")
	}
}
