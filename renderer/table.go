package renderer

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// markdownTable returns a tablewriter configured to print a github flavored
// markdown table.
func markdownTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}
