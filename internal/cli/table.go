package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"

	"github.com/roach88/catalog/internal/catalog"
)

// Column widths of the product table.
const (
	colIndex = 4
	colName  = 30
	colShop  = 20
	colPrice = 15
)

// emptyListMessage is printed instead of a table with no rows.
const emptyListMessage = "The list is empty."

// RenderRecords writes records as a numbered text table.
func RenderRecords(w io.Writer, records []catalog.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, emptyListMessage)
		return
	}

	line := separator(colIndex, colName, colShop, colPrice)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
		center("No", colIndex),
		center("Name", colName),
		center("Shop", colShop),
		center("Price", colPrice),
	)
	fmt.Fprintln(w, line)

	for i, r := range records {
		fmt.Fprintf(w, "| %*d | %s | %s | %s |\n",
			colIndex, i+1,
			padRight(r.Name, colName),
			padRight(r.Shop, colShop),
			padLeft(r.Price.String(), colPrice),
		)
	}
	fmt.Fprintln(w, line)
}

// RenderShops writes shops as a text table of id and title.
func RenderShops(w io.Writer, shops []catalog.Shop) {
	if len(shops) == 0 {
		fmt.Fprintln(w, emptyListMessage)
		return
	}

	line := separator(colIndex, colName)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "| %s | %s |\n", center("ID", colIndex), center("Title", colName))
	fmt.Fprintln(w, line)
	for _, s := range shops {
		fmt.Fprintf(w, "| %*d | %s |\n", colIndex, s.ID, padRight(s.Title, colName))
	}
	fmt.Fprintln(w, line)
}

// separator builds a "+-----+----+" rule for the given column widths.
func separator(widths ...int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	return "+-" + strings.Join(parts, "-+-") + "-+"
}

// center pads s to cells columns, putting the odd space on the right.
func center(s string, cells int) string {
	pad := cells - displayWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func padRight(s string, cells int) string {
	if pad := cells - displayWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func padLeft(s string, cells int) string {
	if pad := cells - displayWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

// displayWidth counts terminal cells: wide and fullwidth East Asian runes
// take two, everything else one.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
