package feedtable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePage = `
<html><body>
<h1>Latest entries</h1>
<table>
  <tr><th>#</th><th>Time</th><th>Name</th><th>Category</th><th>Size</th></tr>
  <tr><td>1</td><td>07 Jan, 14:30</td><td>alpha</td><td>docs</td><td>12kb</td></tr>
  <tr><td>2</td><td>07 Jan, 09:15</td><td>beta</td><td>media</td><td>4mb</td></tr>
</table>
<table>
  <tr><td>9</td><td>08 Jan, 10:00</td><td>ignored second table</td></tr>
</table>
</body></html>`

func TestExtractRowsFirstTableOnly(t *testing.T) {
	rows, err := ExtractRows(context.Background(), []byte(samplePage))
	require.NoError(t, err)

	// header row has no <td> cells, it still appears as an empty raw row
	require.Len(t, rows, 3)
	require.Equal(t, []string{"1", "07 Jan, 14:30", "alpha", "docs", "12kb"}, rows[1])
	require.Equal(t, []string{"2", "07 Jan, 09:15", "beta", "media", "4mb"}, rows[2])
}

func TestExtractRowsNoTable(t *testing.T) {
	_, err := ExtractRows(context.Background(), []byte(`<html><body><p>nothing here</p></body></html>`))
	require.ErrorIs(t, err, ErrNoTable)
}

func TestExtractRowsHeaderOnly(t *testing.T) {
	_, err := ExtractRows(context.Background(), []byte(`<table><tr><th>Time</th></tr></table>`))
	require.ErrorIs(t, err, ErrNoData)
}

func TestExtractRowsCleansCellText(t *testing.T) {
	page := `<table>
	  <tr><th>h</th></tr>
	  <tr><td> 1 </td><td>07 Jan,
	    14:30</td><td>  spaced   out  </td></tr>
	</table>`
	rows, err := ExtractRows(context.Background(), []byte(page))
	require.NoError(t, err)
	require.Equal(t, []string{"1", "07 Jan, 14:30", "spaced out"}, rows[1])
}
