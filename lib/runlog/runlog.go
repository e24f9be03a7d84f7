package runlog

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// journal of run outcomes, kept so an operator can answer "when did
// this last actually merge something" without trawling orchestrator
// logs
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	time INTEGER NOT NULL,
	operation TEXT NOT NULL,
	status TEXT NOT NULL,
	scraped_rows INTEGER NOT NULL,
	updated_rows INTEGER NOT NULL,
	message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_time ON runs (time);
`

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

// Open opens (creating if necessary) a journal database at path.
func Open(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = database.Exec(Schema)
	if err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

type Run struct {
	Time        time.Time
	Operation   string
	Status      string
	ScrapedRows int
	UpdatedRows int
	Message     string
}

func (s Store) Append(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (time, operation, status, scraped_rows, updated_rows, message)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Time.Unix(),
		run.Operation,
		run.Status,
		run.ScrapedRows,
		run.UpdatedRows,
		run.Message,
	)
	return err
}

// Recent returns up to limit runs, newest first.
func (s Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT time, operation, status, scraped_rows, updated_rows, message
		 FROM runs ORDER BY time DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var unix int64
		err = rows.Scan(&unix, &r.Operation, &r.Status, &r.ScrapedRows, &r.UpdatedRows, &r.Message)
		if err != nil {
			return nil, err
		}
		r.Time = time.Unix(unix, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
