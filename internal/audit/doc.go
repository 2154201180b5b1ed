// Package audit records every pass through a certification audit point.
//
// The proof package reports each Certify, Check and Assume call to an
// installed proof.Auditor. This package provides the auditors:
//
//   - Log collects events in memory, stamping each with a logical sequence
//     number from a Clock and the run ID it was created with.
//   - SlogAuditor writes events through a *slog.Logger.
//   - Multi fans one event out to several auditors.
//
// Store persists records in SQLite (default) or MySQL so that audit trails
// from separate runs can be listed and summarized later.
//
// # Ordering
//
//   - Records are ordered by logical sequence, never by wall-clock time.
//   - All queries use ORDER BY run_id, seq, id for deterministic output.
//   - (run_id, seq) is unique; rewriting a record is a no-op.
package audit
