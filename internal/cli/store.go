package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/ghost/internal/audit"
)

// StoreOptions selects an audit store.
type StoreOptions struct {
	Database string // DSN; a file path for sqlite3
	Driver   string // "sqlite3" | "mysql"
}

func (o *StoreOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Database, "db", "", "audit database: SQLite path or MySQL DSN")
	cmd.Flags().StringVar(&o.Driver, "driver", audit.DriverSQLite, "database driver (sqlite3|mysql)")
}

// open opens the selected store, mapping failures to ExitCommandError.
func (o *StoreOptions) open() (*audit.Store, error) {
	st, err := audit.OpenDriver(o.Driver, o.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open audit store", err)
	}
	return st, nil
}
