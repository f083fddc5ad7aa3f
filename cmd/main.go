package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "merchant-report",
		Short: "Service computing and delivering daily merchant metrics reports",
		RunE:  run,
	}

	onceCmd = &cobra.Command{
		Use:   "once",
		Short: "Run the report a single time and exit",
		RunE:  once,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply the reporting database migrations",
		RunE:  migrateDB,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the merchant-report service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	cfgFile string
	version string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.AddCommand(onceCmd, migrateCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("merchant-report failed",
			slog.String("err", err.Error()),
		)
		os.Exit(1)
	}
}
