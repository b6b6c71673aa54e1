package record

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
)

// =========== Mock Repository ===========

type mockRecordRepo struct {
	store  map[int64]*Record
	nextID int64
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{store: make(map[int64]*Record)}
}

func (m *mockRecordRepo) Create(_ context.Context, rec *Record) error {
	m.nextID++
	rec.ID = m.nextID
	m.store[rec.ID] = rec
	return nil
}

func (m *mockRecordRepo) matching(owner uuid.UUID, f Filter) []*Record {
	var result []*Record
	for _, rec := range m.store {
		if rec.OwnerID != owner {
			continue
		}
		if f.Since != nil && rec.RecordedOn.Before(*f.Since) {
			continue
		}
		if f.Kind != nil && rec.Kind != *f.Kind {
			continue
		}
		result = append(result, rec)
	}
	// Newest first, matching the store's ordering contract.
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.RecordedOn.Equal(b.RecordedOn) {
			return a.RecordedOn.After(b.RecordedOn)
		}
		if a.RecordedAt != b.RecordedAt {
			return a.RecordedAt > b.RecordedAt
		}
		return a.ID > b.ID
	})
	return result
}

func (m *mockRecordRepo) List(_ context.Context, owner uuid.UUID, f Filter, limit, offset int) ([]*Record, int, error) {
	all := m.matching(owner, f)
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *mockRecordRepo) ListAll(_ context.Context, owner uuid.UUID, f Filter) ([]*Record, error) {
	return m.matching(owner, f), nil
}

func (m *mockRecordRepo) Delete(_ context.Context, id int64, owner uuid.UUID) error {
	if rec, ok := m.store[id]; ok && rec.OwnerID == owner {
		delete(m.store, id)
	}
	return nil
}

// =========== Tests ===========

func TestService_AppendAndList(t *testing.T) {
	repo := newMockRecordRepo()
	svc := NewService(repo)
	owner := uuid.New()
	ctx := context.Background()

	inputs := []Input{
		{Date: "2026-08-18", Time: "08:00", Kind: "glucose", GlucoseLevel: "95"},
		{Date: "2026-08-20", Time: "08:00", Kind: "glucose", GlucoseLevel: "110"},
		{Date: "2026-08-20", Time: "21:30", Kind: "temperature", Temperature: "36,8"},
	}
	for _, in := range inputs {
		if _, err := svc.Append(ctx, owner, in); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	recs, total, err := svc.List(ctx, owner, Filter{}, 50, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(recs) != 3 {
		t.Fatalf("expected 3 records, got total=%d len=%d", total, len(recs))
	}

	// Newest first: the 21:30 temperature entry leads.
	if recs[0].Kind != KindTemperature {
		t.Errorf("expected newest record first, got kind %s", recs[0].Kind)
	}
	if recs[2].RecordedOn.Format("2006-01-02") != "2026-08-18" {
		t.Errorf("expected oldest record last, got %s", recs[2].RecordedOn.Format("2006-01-02"))
	}
}

func TestService_AppendValidationFailureStoresNothing(t *testing.T) {
	repo := newMockRecordRepo()
	svc := NewService(repo)
	ctx := context.Background()

	in := Input{Date: "2026-08-20", Time: "08:00", Kind: "glucose", GlucoseLevel: "abc"}
	if _, err := svc.Append(ctx, uuid.New(), in); err == nil {
		t.Fatal("expected validation error, got none")
	}
	if len(repo.store) != 0 {
		t.Errorf("expected empty store after failed validation, got %d records", len(repo.store))
	}
}

func TestService_ListKindFilter(t *testing.T) {
	repo := newMockRecordRepo()
	svc := NewService(repo)
	owner := uuid.New()
	ctx := context.Background()

	for _, in := range []Input{
		{Date: "2026-08-20", Time: "08:00", Kind: "glucose", GlucoseLevel: "110"},
		{Date: "2026-08-20", Time: "09:00", Kind: "oxygen", OxygenSaturation: "97"},
	} {
		if _, err := svc.Append(ctx, owner, in); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	kind := KindGlucose
	recs, total, err := svc.List(ctx, owner, Filter{Kind: &kind}, 50, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(recs) != 1 || recs[0].Kind != KindGlucose {
		t.Errorf("expected exactly the glucose record, got total=%d", total)
	}
}

func TestService_DeleteForeignRecordIsNoOp(t *testing.T) {
	repo := newMockRecordRepo()
	svc := NewService(repo)
	ctx := context.Background()

	owner := uuid.New()
	rec, err := svc.Append(ctx, owner, Input{Date: "2026-08-20", Time: "08:00", Kind: "glucose", GlucoseLevel: "110"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	// Another owner deleting this id changes nothing and reports no error.
	if err := svc.Delete(ctx, uuid.New(), rec.ID); err != nil {
		t.Fatalf("Delete by foreign owner: %v", err)
	}
	if _, total, _ := svc.List(ctx, owner, Filter{}, 50, 0); total != 1 {
		t.Errorf("expected record to survive foreign delete, total=%d", total)
	}

	// The owner's own delete removes it.
	if err := svc.Delete(ctx, owner, rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, total, _ := svc.List(ctx, owner, Filter{}, 50, 0); total != 0 {
		t.Errorf("expected record gone after owner delete, total=%d", total)
	}

	// Deleting an id that never existed is also a no-op.
	if err := svc.Delete(ctx, owner, 9999); err != nil {
		t.Fatalf("Delete missing id: %v", err)
	}
}
