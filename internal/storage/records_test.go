package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/talsdata/caseflow/internal/common"
	"github.com/talsdata/caseflow/internal/model"
	"github.com/talsdata/caseflow/internal/service"
)

func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func createTestRecords(count int) []model.CanonicalRecord {
	records := make([]model.CanonicalRecord, count)
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	sources := model.OrganizationSources

	for i := 0; i < count; i++ {
		opened := base.AddDate(0, 0, i)
		age := float64(20 + i)
		records[i] = model.CanonicalRecord{
			ClientID:         fmt.Sprintf("client-%d", i+1),
			CaseID:           fmt.Sprintf("case-%d", i+1),
			Source:           sources[i%len(sources)],
			DateOpened:       &opened,
			AgeIntake:        &age,
			Gender:           "Female",
			Race:             "White",
			LegalProblemCode: "63 Private Landlord/Tenant",
		}
	}
	return records
}

func TestSaveAndGetRecords(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	records := createTestRecords(4)
	if err := store.SaveRecords(ctx, records); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}

	got, err := store.GetRecords(ctx, service.RecordFilter{})
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d records, want 4", len(got))
	}

	first := got[0]
	if first.CaseID != "case-1" {
		t.Errorf("CaseID = %q, want case-1", first.CaseID)
	}
	if first.Source != model.SourceLAET {
		t.Errorf("Source = %q, want %q", first.Source, model.SourceLAET)
	}
	if first.AgeIntake == nil || *first.AgeIntake != 20 {
		t.Errorf("AgeIntake = %v, want 20", first.AgeIntake)
	}
	if first.DateOpened == nil {
		t.Fatal("DateOpened is nil")
	}
	if !first.DateOpened.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateOpened = %v", first.DateOpened)
	}
	if first.DaysOpen != nil {
		t.Errorf("DaysOpen = %v, want nil", first.DaysOpen)
	}
	if first.CountyResidence != "" {
		t.Errorf("CountyResidence = %q, want empty", first.CountyResidence)
	}
}

func TestSaveRecordsAppends(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.SaveRecords(ctx, createTestRecords(2)); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := store.SaveRecords(ctx, createTestRecords(3)); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
}

func TestReplaceAll(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.SaveRecords(ctx, createTestRecords(8)); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}

	if err := store.ReplaceAll(ctx, createTestRecords(3)); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("count after rebuild = %d, want 3", count)
	}
}

func TestGetRecordsFilters(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.SaveRecords(ctx, createTestRecords(8)); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}

	bySource, err := store.GetRecords(ctx, service.RecordFilter{Source: model.SourceLAS})
	if err != nil {
		t.Fatalf("GetRecords by source failed: %v", err)
	}
	if len(bySource) != 2 {
		t.Errorf("got %d LAS records, want 2", len(bySource))
	}
	for _, r := range bySource {
		if r.Source != model.SourceLAS {
			t.Errorf("Source = %q, want %q", r.Source, model.SourceLAS)
		}
	}

	cutoff := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	after, err := store.GetRecords(ctx, service.RecordFilter{OpenedAfter: &cutoff})
	if err != nil {
		t.Fatalf("GetRecords by date failed: %v", err)
	}
	if len(after) != 4 {
		t.Errorf("got %d records opened on/after cutoff, want 4", len(after))
	}

	limited, err := store.GetRecords(ctx, service.RecordFilter{Limit: 3, Offset: 1})
	if err != nil {
		t.Fatalf("GetRecords with limit failed: %v", err)
	}
	if len(limited) != 3 {
		t.Errorf("got %d limited records, want 3", len(limited))
	}
	if limited[0].CaseID != "case-2" {
		t.Errorf("first limited record = %q, want case-2", limited[0].CaseID)
	}
}

func TestGetRecordByCaseID(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.SaveRecords(ctx, createTestRecords(3)); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}

	got, err := store.GetRecordByCaseID(ctx, "case-2")
	if err != nil {
		t.Fatalf("GetRecordByCaseID failed: %v", err)
	}
	if got.ClientID != "client-2" {
		t.Errorf("ClientID = %q, want client-2", got.ClientID)
	}

	_, err = store.GetRecordByCaseID(ctx, "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestCountBySource(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.SaveRecords(ctx, createTestRecords(6)); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}

	counts, err := store.CountBySource(ctx)
	if err != nil {
		t.Fatalf("CountBySource failed: %v", err)
	}
	want := map[string]int{
		model.SourceLAET: 2,
		model.SourceLAS:  2,
		model.SourceWTLS: 1,
		model.SourceMALS: 1,
	}
	for source, n := range want {
		if counts[source] != n {
			t.Errorf("counts[%s] = %d, want %d", source, counts[source], n)
		}
	}
}

func TestSaveRecordsValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.SaveRecords(ctx, nil); err == nil {
		t.Error("expected error for empty batch")
	}

	bad := []model.CanonicalRecord{{CaseID: "case-1", Source: "NOPE"}}
	if err := store.SaveRecords(ctx, bad); err == nil {
		t.Error("expected error for invalid source")
	}
}

func TestStorageInterface(t *testing.T) {
	var _ service.Storage = (*SQLiteStorage)(nil)
}
