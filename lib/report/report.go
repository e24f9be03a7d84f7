package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"tablesync/lib/timezone"
)

// fixed-name side-channel file picked up by the calling orchestrator
const FileName = "result.json"

type Status string

const (
	StatusSuccess          Status = "success"
	StatusNoNewData        Status = "no_new_data"
	StatusError            Status = "error"
	StatusCleanupCompleted Status = "cleanup_completed"
)

// Result is the one structured status record every invocation emits.
type Result struct {
	Status      Status    `json:"status"`
	ScrapedRows int       `json:"scraped_rows"`
	UpdatedRows int       `json:"updated_rows"`
	OutputFile  string    `json:"output_file"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}

func New(status Status, message string) Result {
	return Result{
		Status:    status,
		Message:   message,
		Timestamp: timezone.Now(),
	}
}

// WriteFile persists the result to the fixed side-channel file in dir.
func (r Result) WriteFile(dir string) error {
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, FileName), raw, 0644)
}

// Print echoes the result as line-oriented KEY=value tokens for the
// simple shell parsers that wrap this tool.
func (r Result) Print(w io.Writer) {
	fmt.Fprintf(w, "STATUS=%s\n", r.Status)
	fmt.Fprintf(w, "SCRAPED_ROWS=%d\n", r.ScrapedRows)
	fmt.Fprintf(w, "UPDATED_ROWS=%d\n", r.UpdatedRows)
	fmt.Fprintf(w, "OUTPUT_FILE=%s\n", r.OutputFile)
	fmt.Fprintf(w, "MESSAGE=%s\n", r.Message)
	fmt.Fprintf(w, "TIMESTAMP=%s\n", r.Timestamp.Format(time.RFC3339))
}
