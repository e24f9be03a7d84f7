package commands

import (
	"context"
	"log/slog"
	"os"

	"tablesync/lib/report"
	"tablesync/lib/runlog"
	"tablesync/lib/scrapers/feedtable"
	"tablesync/lib/timezone"
)

// emit delivers the run's structured result everywhere it goes: the
// KEY=value lines on stdout, the fixed-name side-channel file in the
// working directory, and the run journal when one is configured. All
// but stdout are best effort.
func emit(ctx context.Context, cfg Config, operation string, result report.Result) {
	result.Print(os.Stdout)

	if err := result.WriteFile("."); err != nil {
		slog.Warn("failed to write result file", "err", err)
	}

	if cfg.JournalDb == "" {
		return
	}
	database, err := runlog.Open(cfg.JournalDb)
	if err != nil {
		slog.Warn("failed to open run journal", "db", cfg.JournalDb, "err", err)
		return
	}
	defer database.Close()

	err = runlog.NewStore(database).Append(ctx, runlog.Run{
		Time:        result.Timestamp,
		Operation:   operation,
		Status:      string(result.Status),
		ScrapedRows: result.ScrapedRows,
		UpdatedRows: result.UpdatedRows,
		Message:     result.Message,
	})
	if err != nil {
		slog.Warn("failed to append to run journal", "err", err)
	}
}

// loadMarkup fetches the source page, preferring a pre-fetched
// document on disk when one is given.
func loadMarkup(ctx context.Context, sourceUrl, sourceFile string) ([]byte, error) {
	if sourceFile != "" {
		return feedtable.ReadPage(sourceFile)
	}

	client, err := feedtable.NewClient()
	if err != nil {
		return nil, err
	}
	return client.FetchPage(ctx, sourceUrl)
}

func currentYear() int {
	return timezone.Now().Year()
}
