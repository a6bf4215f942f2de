package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/talsdata/caseflow/internal/common"
	"github.com/talsdata/caseflow/internal/model"
	"github.com/talsdata/caseflow/internal/service"
)

// recordColumns lists the table columns in canonical field order; insert
// and scan both rely on it so the two can never drift apart.
var recordColumns = strings.Join(model.FieldOrder, ", ")

var insertRecordSQL = fmt.Sprintf(
	"INSERT INTO case_records (%s) VALUES (%s)",
	recordColumns,
	strings.TrimSuffix(strings.Repeat("?, ", len(model.FieldOrder)), ", "),
)

// SaveRecords appends a batch of canonical records to the collection.
func (s *SQLiteStorage) SaveRecords(ctx context.Context, records []model.CanonicalRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecords(records); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertRecordsTx(ctx, tx, records); err != nil {
		return err
	}

	return tx.Commit()
}

// ReplaceAll discards the entire collection and writes a fresh batch in its
// place, all inside one transaction so readers never observe a half-rebuilt
// dataset.
func (s *SQLiteStorage) ReplaceAll(ctx context.Context, records []model.CanonicalRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecords(records); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM case_records"); err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}

	if err := insertRecordsTx(ctx, tx, records); err != nil {
		return err
	}

	return tx.Commit()
}

func insertRecordsTx(ctx context.Context, tx *sql.Tx, records []model.CanonicalRecord) error {
	stmt, err := tx.PrepareContext(ctx, insertRecordSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range records {
		if _, err := stmt.ExecContext(ctx, records[i].Values()...); err != nil {
			return fmt.Errorf("failed to insert record %q: %w", records[i].CaseID, err)
		}
	}
	return nil
}

// GetRecords returns canonical records matching the filter, ordered by
// date opened then insertion order.
func (s *SQLiteStorage) GetRecords(ctx context.Context, filter service.RecordFilter) ([]model.CanonicalRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM case_records", recordColumns)
	var clauses []string
	var args []any

	if filter.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, filter.Source)
	}
	if filter.OpenedAfter != nil {
		clauses = append(clauses, "date_opened >= ?")
		args = append(args, *filter.OpenedAfter)
	}
	if filter.OpenedBefore != nil {
		clauses = append(clauses, "date_opened <= ?")
		args = append(args, *filter.OpenedBefore)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY date_opened, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.CanonicalRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetRecordByCaseID returns the single record with the given case ID, or
// common.ErrNotFound if no such case exists.
func (s *SQLiteStorage) GetRecordByCaseID(ctx context.Context, caseID string) (*model.CanonicalRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(caseID, "caseID"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM case_records WHERE case_id = ? ORDER BY id DESC LIMIT 1", recordColumns)
	rows, err := s.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query record: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("case %q: %w", caseID, common.ErrNotFound)
	}

	record, err := scanRecord(rows)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Count returns the total number of records in the collection.
func (s *SQLiteStorage) Count(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM case_records").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// CountBySource returns record counts keyed by organization source.
func (s *SQLiteStorage) CountBySource(ctx context.Context) (map[string]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT source, COUNT(*) FROM case_records GROUP BY source")
	if err != nil {
		return nil, fmt.Errorf("failed to count by source: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("failed to scan source count: %w", err)
		}
		counts[source] = count
	}
	return counts, rows.Err()
}

func scanRecord(rows *sql.Rows) (model.CanonicalRecord, error) {
	var r model.CanonicalRecord
	var dateOpened, dateClosed sql.NullTime
	var daysOpen, caseTime, povertyPct, adjPovertyPct, ageIntake sql.NullFloat64
	var householdTotal, householdAdults, householdChildren, outcomeAmount sql.NullFloat64

	err := rows.Scan(
		&r.ClientID, &r.CaseID, &r.Source,
		&dateOpened, &dateClosed, &daysOpen, &caseTime,
		&povertyPct, &adjPovertyPct, &r.IncomeEligible, &r.IncomeOverrideReason,
		&r.IncomeWaiverStatus, &r.AssetEligible, &r.AssetOverrideReason, &r.AssetWaiverStatus,
		&ageIntake, &r.Gender, &r.Race, &r.Ethnicity, &r.Disabled,
		&r.Veteran, &r.Language, &r.LGBT, &r.Citizenship,
		&householdTotal, &householdAdults, &householdChildren, &r.LivingArrangement,
		&r.CountyResidence, &r.ZipCode, &r.CountyDispute,
		&r.LegalProblemCode, &r.FundingSource, &r.PAICase, &r.ReferralSource, &r.DomesticViolence,
		&r.CloseReason, &r.OutcomeCategory, &outcomeAmount, &r.Outcome,
	)
	if err != nil {
		return r, fmt.Errorf("failed to scan record: %w", err)
	}

	if dateOpened.Valid {
		r.DateOpened = &dateOpened.Time
	}
	if dateClosed.Valid {
		r.DateClosed = &dateClosed.Time
	}
	r.DaysOpen = nullFloat(daysOpen)
	r.CaseTime = nullFloat(caseTime)
	r.PovertyPct = nullFloat(povertyPct)
	r.AdjPovertyPct = nullFloat(adjPovertyPct)
	r.AgeIntake = nullFloat(ageIntake)
	r.HouseholdTotal = nullFloat(householdTotal)
	r.HouseholdAdults = nullFloat(householdAdults)
	r.HouseholdChildren = nullFloat(householdChildren)
	r.OutcomeAmount = nullFloat(outcomeAmount)

	return r, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
