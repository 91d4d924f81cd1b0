package entity

import "strings"

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

// NormalizeOrderID uppercases raw console input so order ids
// compare case-insensitively everywhere else.
func NormalizeOrderID(raw string) OrderID {
	return OrderID(strings.ToUpper(raw))
}

type Item struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

func (i Item) Subtotal() int {
	return i.Price * i.Quantity
}

type Orders []Order

type Order struct {
	OrderID  OrderID `json:"order_id"`
	Customer string  `json:"customer"`
	Items    []Item  `json:"items"`
}

func (o Order) Total() int {
	total := 0
	for _, item := range o.Items {
		total += item.Subtotal()
	}

	return total
}

func (o Orders) Contains(id OrderID) bool {
	for _, order := range o {
		if order.OrderID == id {
			return true
		}
	}

	return false
}
