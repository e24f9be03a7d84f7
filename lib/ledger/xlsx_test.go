package ledger

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLedgerRoundTrip(t *testing.T) {
	led := &Ledger{Rows: []Record{
		filled(7, 9, "a"),
		{Stamp: stamp(7, 10, 0), Col2: "partial"},
		filled(7, 11, "b"),
		{}, {},
	}}

	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, led.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	diff := cmp.Diff(led.Rows, loaded.Rows)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}

func TestSaveFileUnwritableDestination(t *testing.T) {
	led := &Ledger{Rows: []Record{filled(7, 9, "a")}}
	err := led.SaveFile(filepath.Join(t.TempDir(), "no", "such", "dir", "ledger.xlsx"))
	require.Error(t, err)
}
