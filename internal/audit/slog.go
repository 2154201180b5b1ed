package audit

import (
	"context"
	"log/slog"

	"github.com/roach88/ghost/proof"
)

// SlogAuditor writes audit events to a structured logger.
//
// Certified events are logged at debug level, assumed and rejected events
// at info level.
type SlogAuditor struct {
	Logger *slog.Logger
}

// NewSlogAuditor returns an auditor writing to logger, or to slog.Default()
// when logger is nil.
func NewSlogAuditor(logger *slog.Logger) *SlogAuditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAuditor{Logger: logger}
}

// Audit implements proof.Auditor.
func (a *SlogAuditor) Audit(e proof.Event) {
	level := slog.LevelInfo
	if e.Outcome == proof.OutcomeCertified {
		level = slog.LevelDebug
	}
	a.Logger.Log(context.Background(), level, "proof "+string(e.Outcome),
		"brand", e.Brand.String(),
		"property", e.Property,
		"detail", e.Detail,
		"caller", e.Caller,
	)
}
