package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sqliteodbc/registerdriver/internal/config"
	"github.com/sqliteodbc/registerdriver/internal/odbcinst"
	"github.com/sqliteodbc/registerdriver/internal/registrar"
	"github.com/sqliteodbc/registerdriver/internal/system"
)

var rootLongDesc string = `registerdriver merges the SQLite ODBC driver registration shipped with an installer
into the system 'odbcinst.ini'.

It reads '<resource-dir>/Contents/Resources/odbcinst.ini', merges its sections and keys into
'<base-dir>/Library/ODBC/odbcinst.ini' and writes the result back, creating the file if it does
not exist yet. When both files define the same key, '--prefer' decides which value is kept:
'bundled' (the default) takes the installer's value, 'installed' keeps the existing one.

Configuration is by flags/environment variables, or by configuration file. The configuration file
must be in the current working directory and named 'registerdriver.yaml', or the path specified
using the '-c' flag. Each flag has an environment variable equivalent, such as
'REGISTERDRIVER_PREFER'.
`

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "enable verbose logging")
	flags.Bool("trace", false, "enable trace logging and print a summary of changes")
	flags.StringP("config", "c", "", "path to a specific config file to use")
	flags.String("source-path", config.DefaultSourcePath, "path of the bundled odbcinst.ini, relative to the resource directory")
	flags.String("destination-path", config.DefaultDestinationPath, "path of the system odbcinst.ini, relative to the base directory")
	flags.Bool("backup", false, "copy the system odbcinst.ini to '<destination>.bak' before replacing it")
	flags.Bool("dry-run", false, "print the resulting odbcinst.ini instead of writing it")
	flags.String("report", "", "write a YAML report of the changes to this path ('-' for stdout)")

	rootCmd.Flags().String("prefer", string(odbcinst.PreferBundled), "which value wins when both files set the same key (bundled | installed)")

	rootCmd.AddCommand(unregisterCmd())
}

var rootCmd = &cobra.Command{
	Use:           "registerdriver <resource-dir> <base-dir>",
	Version:       versionString(),
	Short:         "Register the bundled ODBC driver in the system odbcinst.ini.",
	Long:          rootLongDesc,
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

		return registrar.NewManager(conf, system.NewSystem()).Register()
	},
}
