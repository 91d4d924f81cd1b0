// Package report renders order reports for the console.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	bannerRule = "=================================================="
	tableRule  = "--------------------------------------------------"
)

var printer = message.NewPrinter(language.English)

// Write prints a numbered report of every order in the sequence.
func Write(w io.Writer, title string, orders entity.Orders) {
	fmt.Fprintf(w, "\n==================== %s ====================\n", title)

	for idx, order := range orders {
		fmt.Fprintf(w, "\nOrder #%d\n", idx+1)
		writeOrder(w, order)
	}
}

// WriteSingle prints a report for one order, without numbering.
func WriteSingle(w io.Writer, title string, order entity.Order) {
	fmt.Fprintf(w, "\n==================== %s ====================\n", title)
	writeOrder(w, order)
}

func writeOrder(w io.Writer, order entity.Order) {
	fmt.Fprintf(w, "Order id: %s\n", order.OrderID)
	fmt.Fprintf(w, "Customer: %s\n", order.Customer)
	fmt.Fprintln(w, tableRule)

	table := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
	fmt.Fprintln(table, "Item\tPrice\tQuantity\tSubtotal")
	for _, item := range order.Items {
		fmt.Fprintf(table, "%s\t%d\t%d\t%d\n", item.Name, item.Price, item.Quantity, item.Subtotal())
	}
	table.Flush()

	fmt.Fprintln(w, tableRule)
	printer.Fprintf(w, "Order total: %d\n", order.Total())
	fmt.Fprintln(w, bannerRule)
}
