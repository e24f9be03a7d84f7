package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"tablesync/lib/ledger"
	"tablesync/lib/mailer"
	"tablesync/lib/report"
	"tablesync/lib/scrapers/feedtable"
	"tablesync/lib/timezone"
	"tablesync/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var (
	scrapeSource *string
	scrapeFile   *string
	scrapeOut    *string
	scrapeAll    *bool
	scrapeEmail  *bool
)

func init() {
	scrapeSource = scrapeCmd.Flags().String("source", "", "URL of the page holding the table.")
	scrapeFile = scrapeCmd.Flags().String("file", "", "Path to a pre-fetched source document, used instead of --source.")
	scrapeOut = scrapeCmd.Flags().String("out", "", "Path of the output workbook.")
	scrapeAll = scrapeCmd.Flags().Bool("all", false, "Keep every scraped row instead of the trailing 24h window.")
	scrapeEmail = scrapeCmd.Flags().Bool("email", false, "Mail the output workbook as an attachment.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--source <url>|--file <path>] [--out <path>]",
	Short: "Scrapes the source table into a fresh workbook.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if *scrapeSource != "" {
			cfg.SourceUrl = *scrapeSource
		}
		if *scrapeOut != "" {
			cfg.OutputFile = *scrapeOut
		}
		if cfg.SourceUrl == "" && *scrapeFile == "" {
			emit(ctx, cfg, "scrape", report.New(report.StatusError, "no source url or document supplied"))
			os.Exit(1)
		}

		markup, err := loadMarkup(ctx, cfg.SourceUrl, *scrapeFile)
		if err != nil {
			emit(ctx, cfg, "scrape", report.New(report.StatusError, err.Error()))
			os.Exit(1)
		}

		rows, err := feedtable.ExtractRows(ctx, markup)
		if errors.Is(err, feedtable.ErrNoTable) || errors.Is(err, feedtable.ErrNoData) {
			slog.Info("source yielded nothing to scrape", "reason", err)
			emit(ctx, cfg, "scrape", report.New(report.StatusNoNewData, err.Error()))
			return
		}
		if err != nil {
			emit(ctx, cfg, "scrape", report.New(report.StatusError, err.Error()))
			return
		}

		records := feedtable.NormalizeRows(rows, currentYear())
		kept := records
		if !*scrapeAll {
			start, end := timezone.TrailingDay(timezone.Now())
			kept = ledger.Filter(records, ledger.TrailingWindow{Start: start, End: end})
		}
		if len(kept) == 0 {
			emit(ctx, cfg, "scrape", report.New(report.StatusNoNewData, "no rows in the scrape window"))
			return
		}

		// the page lists newest first, the workbook is chronological
		slices.Reverse(kept)
		led := &ledger.Ledger{Rows: kept}
		if err := led.SaveFile(cfg.OutputFile); err != nil {
			emit(ctx, cfg, "scrape", report.New(report.StatusError, err.Error()))
			return
		}
		slog.Info("wrote scraped rows", "rows", len(kept), "out", cfg.OutputFile)

		if *scrapeEmail || cfg.SendEmail {
			err := mailer.SendWorkbook(cfg.Mail, cfg.OutputFile, timezone.Now())
			if err != nil {
				result := report.New(report.StatusError, fmt.Sprintf("workbook written but mail failed: %s", err))
				result.ScrapedRows = len(kept)
				result.OutputFile = cfg.OutputFile
				emit(ctx, cfg, "scrape", result)
				return
			}
			slog.Info("mailed workbook", "to", cfg.Mail.ToEmail)
		}

		result := report.New(report.StatusSuccess, fmt.Sprintf("scraped %d rows", len(kept)))
		result.ScrapedRows = len(kept)
		result.OutputFile = cfg.OutputFile
		emit(ctx, cfg, "scrape", result)
	},
}
