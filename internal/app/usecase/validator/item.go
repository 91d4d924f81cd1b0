package validator

import (
	"errors"
	"strconv"
)

var (
	ErrNotInteger       = errors.New("value is not an integer")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNonPositiveCount = errors.New("quantity must be a positive integer")
)

func ParsePrice(raw string) (int, error) {
	price, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotInteger
	}

	if price < 0 {
		return 0, ErrNegativePrice
	}

	return price, nil
}

func ParseQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotInteger
	}

	if quantity <= 0 {
		return 0, ErrNonPositiveCount
	}

	return quantity, nil
}
