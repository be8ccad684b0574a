package main

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"pocketc/pkg/interp"
)

var (
	errColor    = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
	promptColor = color.New(color.FgCyan)
)

// renderTokenTable prints one row per token, EOF included.
func renderTokenTable(w io.Writer, tokens []interp.Token) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Type", "Lexeme", "Line"})
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, tok := range tokens {
		table.Append([]string{
			strconv.Itoa(i),
			tok.Type.String(),
			tok.Lexeme,
			strconv.Itoa(tok.Line),
		})
	}
	table.Render()
}
