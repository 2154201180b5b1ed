package audit

import (
	"context"
	"fmt"
)

// Write inserts records in one transaction. A record whose (run_id, seq)
// already exists is silently skipped, so writing the same log twice is
// idempotent.
func (s *Store) Write(ctx context.Context, records ...Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write records: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.PrepareContext(ctx, s.dialect.insert)
	if err != nil {
		return fmt.Errorf("write records: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if r.RunID == "" {
			return fmt.Errorf("write records: seq %d: run_id is required", r.Seq)
		}
		if _, err := stmt.ExecContext(ctx,
			r.RunID,
			r.Seq,
			int64(r.Brand),
			r.Property,
			string(r.Outcome),
			r.Detail,
			r.Caller,
		); err != nil {
			return fmt.Errorf("write records: seq %d: %w", r.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write records: commit: %w", err)
	}
	return nil
}
