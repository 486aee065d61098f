package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sqliteodbc/registerdriver/internal/config"
	"github.com/sqliteodbc/registerdriver/internal/registrar"
	"github.com/sqliteodbc/registerdriver/internal/system"
)

// unregisterCmd constructs the `unregister` subcommand
func unregisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unregister <resource-dir> <base-dir>",
		Short: "Remove the bundled ODBC driver from the system odbcinst.ini.",
		Long: `Remove the bundled ODBC driver from the system odbcinst.ini.

Every key declared in the bundled odbcinst.ini is removed from the system file, and sections
left empty are dropped. Keys added to those sections by hand are kept. If the system file
does not exist, nothing is done.
`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRun: func(cmd *cobra.Command, args []string) {
			parseLoggingFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.NewConfig(cmd, cmd.Flags(), args)
			if err != nil {
				return fmt.Errorf("failed to configure registerdriver: %w", err)
			}

			return registrar.NewManager(conf, system.NewSystem()).Unregister()
		},
	}
}
