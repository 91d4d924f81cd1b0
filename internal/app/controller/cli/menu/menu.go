// Package menu drives the interactive console loop: it shows the
// option menu, dispatches to the ledger operations and persists the
// order sequences after every mutation.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/avGenie/go-order-tracker/internal/app/controller/cli/prompt"
	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"github.com/avGenie/go-order-tracker/internal/app/report"
	"github.com/avGenie/go-order-tracker/internal/app/usecase/ledger"
	"github.com/avGenie/go-order-tracker/internal/app/usecase/validator"
	"go.uber.org/zap"
)

const (
	pendingReportTitle   = "Order report"
	fulfilledReportTitle = "Fulfilled order"
)

type OrderSaver interface {
	SavePending(orders entity.Orders) error
	SaveFulfilled(orders entity.Orders) error
}

type Menu struct {
	prompter *prompt.Prompter
	storage  OrderSaver
	out      io.Writer

	pending   entity.Orders
	fulfilled entity.Orders
}

func New(prompter *prompt.Prompter, storage OrderSaver, out io.Writer, pending, fulfilled entity.Orders) *Menu {
	return &Menu{
		prompter:  prompter,
		storage:   storage,
		out:       out,
		pending:   pending,
		fulfilled: fulfilled,
	}
}

// Run loops over the menu until the operator quits with "4" or an
// empty selection. Persistence failures abort the loop.
func (m *Menu) Run() error {
	for {
		m.printMenu()

		choice, err := m.prompter.ReadLine("Select an option (Enter to quit): ")
		if err != nil {
			return err
		}

		switch choice {
		case "", "4":
			zap.L().Info("leaving menu loop")
			return nil
		case "1":
			if err := m.addOrder(); err != nil {
				return err
			}
		case "2":
			m.reportOrders()
		case "3":
			if err := m.fulfillOrder(); err != nil {
				return err
			}
		default:
			fmt.Fprintln(m.out, "=> Enter a valid option (1-4)")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n*************** Menu ***************")
	fmt.Fprintln(m.out, "1. Add order")
	fmt.Fprintln(m.out, "2. Order report")
	fmt.Fprintln(m.out, "3. Fulfill order")
	fmt.Fprintln(m.out, "4. Quit")
	fmt.Fprintln(m.out, "**********************************")
}

func (m *Menu) addOrder() error {
	rawID, err := m.prompter.ReadLine("Enter order id: ")
	if err != nil {
		return err
	}

	orderID := entity.NormalizeOrderID(rawID)
	if m.pending.Contains(orderID) {
		fmt.Fprintf(m.out, "=> Error: order id %s already exists!\n", orderID)
		return m.persistPending()
	}

	customer, err := m.prompter.ReadLine("Enter customer name: ")
	if err != nil {
		return err
	}

	items, err := m.readItems()
	if err != nil {
		return err
	}

	pending, err := ledger.Add(m.pending, entity.Order{
		OrderID:  orderID,
		Customer: customer,
		Items:    items,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrNoItems) {
			fmt.Fprintln(m.out, "=> At least one order item is required")
		} else {
			fmt.Fprintf(m.out, "=> Error: order id %s already exists!\n", orderID)
		}

		return m.persistPending()
	}

	m.pending = pending
	zap.L().Info("order added", zap.String("order_id", orderID.String()))
	fmt.Fprintf(m.out, "=> Order %s added!\n", orderID)

	return m.persistPending()
}

// readItems collects items until an empty name. A rejected price or
// quantity restarts the entry from the item name.
func (m *Menu) readItems() ([]entity.Item, error) {
	var items []entity.Item

	for {
		name, err := m.prompter.ReadLine("Enter item name (empty to finish): ")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return items, nil
		}

		rawPrice, err := m.prompter.ReadLine("Enter price: ")
		if err != nil {
			return nil, err
		}

		price, err := validator.ParsePrice(rawPrice)
		if err != nil {
			fmt.Fprintln(m.out, itemErrorMessage(err))
			continue
		}

		rawQuantity, err := m.prompter.ReadLine("Enter quantity: ")
		if err != nil {
			return nil, err
		}

		quantity, err := validator.ParseQuantity(rawQuantity)
		if err != nil {
			fmt.Fprintln(m.out, itemErrorMessage(err))
			continue
		}

		items = append(items, entity.Item{
			Name:     name,
			Price:    price,
			Quantity: quantity,
		})
	}
}

func (m *Menu) reportOrders() {
	if len(m.pending) == 0 {
		fmt.Fprintln(m.out, "=> No orders yet")
		return
	}

	report.Write(m.out, pendingReportTitle, m.pending)
}

func (m *Menu) fulfillOrder() error {
	if len(m.pending) == 0 {
		fmt.Fprintln(m.out, "=> No pending orders")
		return nil
	}

	fmt.Fprintln(m.out, "\n======== Pending orders ========")
	for idx, order := range m.pending {
		fmt.Fprintf(m.out, "%d. Order id: %s - Customer: %s\n", idx+1, order.OrderID, order.Customer)
	}
	fmt.Fprintln(m.out, "================================")

	choice, err := m.prompter.ReadLine("Select an order to fulfill (number, Enter to cancel): ")
	if err != nil {
		return err
	}
	if choice == "" {
		fmt.Fprintln(m.out, "=> Fulfillment cancelled")
		return nil
	}

	index, err := strconv.Atoi(choice)
	if err != nil {
		fmt.Fprintln(m.out, "=> Error: enter a valid number")
		return nil
	}

	pending, order, err := ledger.Fulfill(m.pending, index-1)
	if err != nil {
		fmt.Fprintln(m.out, "=> Error: enter a valid number")
		return nil
	}

	m.pending = pending
	m.fulfilled = append(m.fulfilled, order)
	zap.L().Info("order fulfilled", zap.String("order_id", order.OrderID.String()))
	fmt.Fprintf(m.out, "=> Order %s fulfilled\n", order.OrderID)

	if err := m.persistPending(); err != nil {
		return err
	}
	if err := m.storage.SaveFulfilled(m.fulfilled); err != nil {
		return fmt.Errorf("error while saving fulfilled orders: %w", err)
	}

	report.WriteSingle(m.out, fulfilledReportTitle, order)

	return nil
}

func (m *Menu) persistPending() error {
	if err := m.storage.SavePending(m.pending); err != nil {
		return fmt.Errorf("error while saving pending orders: %w", err)
	}

	return nil
}

func itemErrorMessage(err error) string {
	switch {
	case errors.Is(err, validator.ErrNegativePrice):
		return "=> Error: price must not be negative, try again"
	case errors.Is(err, validator.ErrNonPositiveCount):
		return "=> Error: quantity must be a positive integer, try again"
	default:
		return "=> Error: price and quantity must be integers, try again"
	}
}
