package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
	"github.com/angelglnd-coder/cler-vision-app/internal/workorder"
)

// NextNumber reports the sequence state for one billing account. It
// implements the workorder.Authority contract: one query per account,
// the caller increments locally from the snapshot.
func (s *Store) NextNumber(account string) (workorder.AuthorityResponse, error) {
	resp := workorder.AuthorityResponse{Prefix: account}

	var seq sql.NullInt64
	var latest sql.NullString
	err := s.db.QueryRow(`
		SELECT sequence, wo_number FROM work_orders
		WHERE account_id = ?
		ORDER BY sequence DESC
		LIMIT 1
	`, account).Scan(&seq, &latest)
	if err == sql.ErrNoRows {
		resp.NextNumber = 1
		return resp, nil
	}
	if err != nil {
		return resp, fmt.Errorf("failed to query latest work order for %s: %w", account, err)
	}

	resp.SequentialNumber = int(seq.Int64)
	resp.LatestWoNumber = latest.String
	resp.NextNumber = resp.SequentialNumber + 1
	return resp, nil
}

// SaveBatch persists assigned work orders in one transaction. Rows
// without a number are skipped; any insert failure rolls back the batch.
func (s *Store) SaveBatch(runID, schemaName string, rows []model.Row) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO work_orders (account_id, wo_number, base_number, sequence, print_count, schema_name, run_id, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	saved := 0
	for i, row := range rows {
		wo := row.String("WO_Number")
		if wo == "" {
			continue
		}
		n, err := workorder.Parse(wo)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		payload, err := json.Marshal(row)
		if err != nil {
			return 0, fmt.Errorf("row %d: failed to encode payload: %w", i+1, err)
		}
		if _, err := stmt.Exec(n.Account, wo, n.BaseNumber(), n.Sequence, n.PrintCount, schemaName, runID, string(payload)); err != nil {
			return 0, fmt.Errorf("row %d: failed to save work order %s: %w", i+1, wo, err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit batch: %w", err)
	}
	return saved, nil
}

// CreateRun records the start of an import run.
func (s *Store) CreateRun(runID, filename, schemaName string, score float64, totalRows int) error {
	_, err := s.db.Exec(`
		INSERT INTO import_runs (run_id, filename, schema_name, detection_score, total_rows, status)
		VALUES (?, ?, ?, ?, ?, 'processing')
	`, runID, filename, schemaName, score, totalRows)
	if err != nil {
		return fmt.Errorf("failed to create import run: %w", err)
	}
	return nil
}

// FinishRun closes an import run with its final status.
func (s *Store) FinishRun(runID string, errorRows int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_runs SET
			error_rows = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE run_id = ?
	`, errorRows, status, errorMessage, runID)
	if err != nil {
		return fmt.Errorf("failed to update import run: %w", err)
	}
	return nil
}
