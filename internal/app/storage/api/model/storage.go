package model

import (
	"github.com/avGenie/go-order-tracker/internal/app/entity"
)

type Storage interface {
	Close() error

	LoadPending() (entity.Orders, error)
	LoadFulfilled() (entity.Orders, error)

	SavePending(orders entity.Orders) error
	SaveFulfilled(orders entity.Orders) error
}
