package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hoopstats/internal/app"
)

func newImportCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Copy the CSV stat table into the SQLite snapshot",
		Long: `Read data.csv_path and replace the snapshot at data.snapshot_path.
Set data.source to sqlite to serve queries from the snapshot afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			imp, err := app.ImportSnapshot(cmd.Context(), o.cfg.Data)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows from %s into %s\n", imp.RowCount, imp.Source, o.cfg.Data.SnapshotPath)
			return nil
		},
	}
}

func newServeCommand(o *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stat queries and charts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				o.cfg.App.HTTPAddr = addr
			}
			a, err := o.application(cmd.Context())
			if err != nil {
				return err
			}
			a.Summary.Print(cmd.OutOrStdout())
			return a.Serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Override app.http_addr")
	return cmd
}
