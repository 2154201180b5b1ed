package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/ghost/internal/audit"
	"github.com/roach88/ghost/proof"
)

// AuditOptions holds flags for the audit subcommands.
type AuditOptions struct {
	*RootOptions
	Store    StoreOptions
	RunID    string
	Property string
	Outcome  string
}

// NewAuditCommand creates the audit command group.
func NewAuditCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect stored audit records",
		Long: `Inspect the audit records written by "ghost check --db".

Every certification, rejection and assumption is one record. Assumptions
are the unchecked points of a program and are usually what to review.`,
	}

	cmd.AddCommand(newAuditListCommand(rootOpts))
	cmd.AddCommand(newAuditSummaryCommand(rootOpts))
	cmd.AddCommand(newAuditRunsCommand(rootOpts))

	return cmd
}

func newAuditListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit records",
		Long: `List audit records in run and sequence order.

Examples:
  ghost audit list --db ./audit.db
  ghost audit list --db ./audit.db --outcome assumed
  ghost audit list --db ./audit.db --run 0192f1c0-... --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuditList(opts, cmd)
		},
	}

	opts.Store.addFlags(cmd)
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "only records of this run")
	cmd.Flags().StringVar(&opts.Property, "property", "", "only records of this property")
	cmd.Flags().StringVar(&opts.Outcome, "outcome", "", "only records with this outcome (certified|rejected|assumed)")

	return cmd
}

func newAuditSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Count outcomes per property",
		Long: `Count certified, rejected and assumed records per property.

Examples:
  ghost audit summary --db ./audit.db
  ghost audit summary --db ./audit.db --run 0192f1c0-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuditSummary(opts, cmd)
		},
	}

	opts.Store.addFlags(cmd)
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "only records of this run")

	return cmd
}

func newAuditRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "runs",
		Short:         "List run IDs in the audit store",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuditRuns(opts, cmd)
		},
	}

	opts.Store.addFlags(cmd)
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func parseOutcome(s string) (proof.Outcome, error) {
	switch o := proof.Outcome(s); o {
	case "", proof.OutcomeCertified, proof.OutcomeRejected, proof.OutcomeAssumed:
		return o, nil
	default:
		return "", NewExitError(ExitCommandError, fmt.Sprintf("invalid outcome %q: must be certified, rejected or assumed", s))
	}
}

func runAuditList(opts *AuditOptions, cmd *cobra.Command) error {
	outcome, err := parseOutcome(opts.Outcome)
	if err != nil {
		return err
	}

	st, err := opts.Store.open()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.List(commandContext(cmd), audit.Filter{
		RunID:    opts.RunID,
		Property: opts.Property,
		Outcome:  outcome,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list audit records", err)
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		if records == nil {
			records = []audit.Record{}
		}
		return newFormatter(opts.RootOptions, cmd).Encode(CLIResponse{Status: "ok", Data: records, RunID: opts.RunID})
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No audit records found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSEQ\tPROPERTY\tOUTCOME\tDETAIL\tCALLER")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", r.RunID, r.Seq, r.Property, r.Outcome, r.Detail, r.Caller)
	}
	return tw.Flush()
}

func runAuditSummary(opts *AuditOptions, cmd *cobra.Command) error {
	st, err := opts.Store.open()
	if err != nil {
		return err
	}
	defer st.Close()

	summary, err := st.Summary(commandContext(cmd), opts.RunID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to summarize audit records", err)
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		if summary == nil {
			summary = []audit.PropertySummary{}
		}
		return newFormatter(opts.RootOptions, cmd).Encode(CLIResponse{Status: "ok", Data: summary, RunID: opts.RunID})
	}

	if len(summary) == 0 {
		fmt.Fprintln(w, "No audit records found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROPERTY\tCERTIFIED\tREJECTED\tASSUMED\tTOTAL")
	for _, s := range summary {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", s.Property, s.Certified, s.Rejected, s.Assumed, s.Total())
	}
	return tw.Flush()
}

func runAuditRuns(opts *AuditOptions, cmd *cobra.Command) error {
	st, err := opts.Store.open()
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.Runs(commandContext(cmd))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}
	if runs == nil {
		runs = []string{}
	}

	formatter := newFormatter(opts.RootOptions, cmd)
	if opts.Format == "json" {
		return formatter.Success(runs)
	}
	for _, id := range runs {
		if err := formatter.Success(id); err != nil {
			return err
		}
	}
	return nil
}
