package freqdist

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const defaultBarWidth = 40

// TerminalRenderer prints a table with one coloured bar per word.
type TerminalRenderer struct {
	BarWidth int
}

func (r TerminalRenderer) Render(w io.Writer, cfg Config, entries []Entry) error {
	width := r.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}
	if _, err := fmt.Fprintln(w, color.OpBold.Render(cfg.Title)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Word", "Count", ""})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	bar := paletteFor(cfg.Color).term
	highest := maxCount(entries)
	for _, e := range entries {
		length := 0
		if highest > 0 {
			length = e.Count * width / highest
		}
		if length == 0 && e.Count > 0 {
			length = 1
		}
		table.Append([]string{e.Word, strconv.Itoa(e.Count), bar.Render(strings.Repeat("█", length))})
	}
	table.Render()
	return nil
}
