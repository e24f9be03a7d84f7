package feedtable

import (
	"bytes"
	"context"
	"errors"

	"tablesync/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrNoTable = errors.New("no table found in source document")
	ErrNoData  = errors.New("table has no data rows")
)

// ExtractRows locates the first <table> in the markup and returns the
// cell texts of every row. Column semantics are not interpreted here.
// Returns ErrNoTable when the document has no table element and
// ErrNoData when the table holds the header row only.
func ExtractRows(ctx context.Context, markup []byte) ([][]string, error) {
	ctx, span := tracer.Start(ctx, "ExtractRows")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		span.SetStatus(codes.Error, ErrNoTable.Error())
		return nil, ErrNoTable
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, htmlutil.CellTexts(tr))
	})
	span.SetAttributes(attribute.Int("rows", len(rows)))

	if len(rows) <= 1 {
		return nil, ErrNoData
	}
	return rows, nil
}
