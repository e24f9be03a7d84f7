package commands

import (
	"errors"
	"os"

	"tablesync/lib/ledger"
	"tablesync/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showLedger *string

func init() {
	showLedger = showCmd.Flags().String("ledger", "", "Path of the ledger workbook to print.")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show --ledger <path/to/ledger.xlsx>",
	Short: "Prints a ledger workbook.",
	Run: func(cmd *cobra.Command, args []string) {
		if *showLedger == "" {
			serviceutil.Fatal("a ledger is required", errors.New("no --ledger supplied"))
		}

		led, err := ledger.LoadFile(*showLedger)
		if err != nil {
			serviceutil.Fatal("failed to load ledger", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Timestamp", "Col2", "Col3", "Col4"})

		for _, r := range led.Rows {
			stamp := ""
			if !r.Stamp.IsZero() {
				stamp = r.Stamp.Format(ledger.StampLayout)
			}
			t.AppendRow(table.Row{stamp, r.Col2, r.Col3, r.Col4})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
