package commands

import (
	"fmt"
	"os"

	"tablesync/lib/report"
	"tablesync/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var cleanupOut *string

func init() {
	cleanupOut = cleanupCmd.Flags().String("out", "", "Path of the transient workbook to remove.")
	rootCmd.AddCommand(cleanupCmd)
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup [--out <path>]",
	Short: "Removes the transient output workbook after delivery.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if *cleanupOut != "" {
			cfg.OutputFile = *cleanupOut
		}

		err = os.Remove(cfg.OutputFile)
		if err != nil && !os.IsNotExist(err) {
			emit(ctx, cfg, "cleanup", report.New(report.StatusError, err.Error()))
			return
		}

		result := report.New(report.StatusCleanupCompleted, fmt.Sprintf("removed %s", cfg.OutputFile))
		emit(ctx, cfg, "cleanup", result)
	},
}
