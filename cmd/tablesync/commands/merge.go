package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"tablesync/lib/ledger"
	"tablesync/lib/report"
	"tablesync/lib/scrapers/feedtable"
	"tablesync/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var (
	mergeLedger *string
	mergeSource *string
	mergeFile   *string
)

func init() {
	mergeLedger = mergeCmd.Flags().String("ledger", "", "Path of the master ledger workbook to merge into.")
	mergeSource = mergeCmd.Flags().String("source", "", "URL of the page holding the table.")
	mergeFile = mergeCmd.Flags().String("file", "", "Path to a pre-fetched source document, used instead of --source.")
	rootCmd.AddCommand(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:   "merge --ledger <path/to/ledger.xlsx> [--source <url>|--file <path>]",
	Short: "Scrapes rows newer than the ledger's high-water mark and fills them into its placeholder slots.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if *mergeSource != "" {
			cfg.SourceUrl = *mergeSource
		}
		if *mergeLedger == "" {
			serviceutil.Fatal("a master ledger is required", errors.New("no --ledger supplied"))
		}
		if cfg.SourceUrl == "" && *mergeFile == "" {
			emit(ctx, cfg, "merge", report.New(report.StatusError, "no source url or document supplied"))
			os.Exit(1)
		}

		led, err := ledger.LoadFile(*mergeLedger)
		if err != nil {
			serviceutil.Fatal("failed to load ledger", err)
		}

		markup, err := loadMarkup(ctx, cfg.SourceUrl, *mergeFile)
		if err != nil {
			emit(ctx, cfg, "merge", report.New(report.StatusError, err.Error()))
			os.Exit(1)
		}

		rows, err := feedtable.ExtractRows(ctx, markup)
		if errors.Is(err, feedtable.ErrNoTable) || errors.Is(err, feedtable.ErrNoData) {
			slog.Info("source yielded nothing to scrape", "reason", err)
			emit(ctx, cfg, "merge", report.New(report.StatusNoNewData, err.Error()))
			return
		}
		if err != nil {
			emit(ctx, cfg, "merge", report.New(report.StatusError, err.Error()))
			return
		}

		records := feedtable.NormalizeRows(rows, currentYear())
		mark, _ := led.HighWaterMark()
		kept := ledger.Filter(records, ledger.NewerThan{Mark: mark})
		if len(kept) == 0 {
			emit(ctx, cfg, "merge", report.New(report.StatusNoNewData, "nothing newer than the ledger"))
			return
		}

		// oldest of the new rows first, so filling preserves the
		// ledger's stamp order
		slices.Reverse(kept)
		stats := led.Merge(kept)

		result, persist := mergeOutcome(stats, len(kept), *mergeLedger)
		if persist {
			if err := led.SaveFile(*mergeLedger); err != nil {
				result = report.New(report.StatusError, err.Error())
				result.ScrapedRows = len(kept)
				emit(ctx, cfg, "merge", result)
				return
			}
			slog.Info("merged scrape into ledger",
				"updated", stats.Updated,
				"partial", stats.Partial,
				"truncated", stats.Truncated,
				"ledger", *mergeLedger,
			)
		}
		emit(ctx, cfg, "merge", result)
	},
}

// mergeOutcome maps merge statistics onto the result contract. Only
// fully filled rows count as updates: a run that merely grazed
// partially-filled rows reports no_new_data and must not persist, the
// in-memory partial fills are discarded with the process.
func mergeOutcome(stats ledger.MergeStats, scraped int, ledgerPath string) (report.Result, bool) {
	if stats.Updated == 0 {
		result := report.New(report.StatusNoNewData, "no empty slots available after the high-water mark")
		result.ScrapedRows = scraped
		return result, false
	}

	message := fmt.Sprintf("filled %d rows", stats.Updated)
	if stats.Partial > 0 {
		message += fmt.Sprintf(", %d rows gained fields without completing", stats.Partial)
	}
	if stats.Truncated > 0 {
		message += fmt.Sprintf(", %d rows dropped for lack of placeholder slots", stats.Truncated)
	}

	result := report.New(report.StatusSuccess, message)
	result.ScrapedRows = scraped
	result.UpdatedRows = stats.Updated
	result.OutputFile = ledgerPath
	return result, true
}
