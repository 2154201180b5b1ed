package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/ghost/proof"
)

// Filter narrows List. Empty fields match everything.
type Filter struct {
	RunID    string
	Property string
	Outcome  proof.Outcome
}

// where renders the filter as a WHERE clause with positional arguments.
func (f Filter) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.RunID != "" {
		conds = append(conds, "run_id = ?")
		args = append(args, f.RunID)
	}
	if f.Property != "" {
		conds = append(conds, "property = ?")
		args = append(args, f.Property)
	}
	if f.Outcome != "" {
		conds = append(conds, "outcome = ?")
		args = append(args, string(f.Outcome))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns the records matching f ordered by run_id, seq, id.
func (s *Store) List(ctx context.Context, f Filter) ([]Record, error) {
	where, args := f.where()
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, seq, brand, property, outcome, detail, caller
		FROM audit_records`+where+`
		ORDER BY run_id ASC, seq ASC, id ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r       Record
			brand   int64
			outcome string
		)
		if err := rows.Scan(&r.ID, &r.RunID, &r.Seq, &brand, &r.Property, &outcome, &r.Detail, &r.Caller); err != nil {
			return nil, fmt.Errorf("list records: scan: %w", err)
		}
		r.Brand = uint64(brand)
		r.Outcome = proof.Outcome(outcome)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}

// PropertySummary counts outcomes for one property.
type PropertySummary struct {
	Property  string `json:"property"`
	Certified int    `json:"certified"`
	Rejected  int    `json:"rejected"`
	Assumed   int    `json:"assumed"`
}

// Total returns the number of audit events for the property.
func (p PropertySummary) Total() int {
	return p.Certified + p.Rejected + p.Assumed
}

// Summary counts outcomes per property for runID, or for all runs when
// runID is empty. Properties are returned in ascending order.
func (s *Store) Summary(ctx context.Context, runID string) ([]PropertySummary, error) {
	where, args := Filter{RunID: runID}.where()
	rows, err := s.db.QueryContext(ctx, `
		SELECT property, outcome, COUNT(*)
		FROM audit_records`+where+`
		GROUP BY property, outcome
		ORDER BY property ASC, outcome ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("summarize records: %w", err)
	}
	defer rows.Close()

	var out []PropertySummary
	for rows.Next() {
		var (
			property, outcome string
			count             int
		)
		if err := rows.Scan(&property, &outcome, &count); err != nil {
			return nil, fmt.Errorf("summarize records: scan: %w", err)
		}
		if len(out) == 0 || out[len(out)-1].Property != property {
			out = append(out, PropertySummary{Property: property})
		}
		cur := &out[len(out)-1]
		switch proof.Outcome(outcome) {
		case proof.OutcomeCertified:
			cur.Certified += count
		case proof.OutcomeRejected:
			cur.Rejected += count
		case proof.OutcomeAssumed:
			cur.Assumed += count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("summarize records: %w", err)
	}
	return out, nil
}

// Runs returns the distinct run IDs in the store in ascending order.
func (s *Store) Runs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT run_id FROM audit_records ORDER BY run_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list runs: scan: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
