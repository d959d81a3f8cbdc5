package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vvka-141/normhash/pkg/normhash"
)

// renderSummary renders the verbose run report printed on stderr.
func renderSummary(input string, cfg normhash.Config, res *normhash.Result) string {
	output := res.OutputPath
	if output == "" {
		output = "-"
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendRows([]table.Row{
		{"Input", input},
		{"Output", output},
		{"EOL", fmt.Sprintf("%q", cfg.EOL)},
		{"No EOF", cfg.NoEOF},
		{"Ignore whitespaces", cfg.IgnoreWhitespaces},
		{"Lines", humanize.Comma(int64(res.Lines))},
		{"Read", humanize.Bytes(uint64(res.BytesRead))},
		{"Hashed", humanize.Bytes(uint64(res.BytesWritten))},
		{"SHA-256", res.Digest},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
	})

	return tw.Render()
}
