package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
	err_storage "github.com/avGenie/go-order-tracker/internal/app/storage/api/errors"
)

const fileIndent = "    "

// Storage keeps the pending and fulfilled order sequences in two
// pretty-printed JSON documents, overwritten whole on every save.
type Storage struct {
	pendingPath   string
	fulfilledPath string
}

func NewFileStorage(pendingPath, fulfilledPath string) *Storage {
	return &Storage{
		pendingPath:   pendingPath,
		fulfilledPath: fulfilledPath,
	}
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) LoadPending() (entity.Orders, error) {
	return s.load(s.pendingPath)
}

func (s *Storage) LoadFulfilled() (entity.Orders, error) {
	return s.load(s.fulfilledPath)
}

func (s *Storage) SavePending(orders entity.Orders) error {
	return s.save(s.pendingPath, orders)
}

func (s *Storage) SaveFulfilled(orders entity.Orders) error {
	return s.save(s.fulfilledPath, orders)
}

// load returns an empty sequence for a missing file. Any other
// failure, malformed JSON included, propagates to the caller.
func (s *Storage) load(path string) (entity.Orders, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.Orders{}, nil
		}

		return nil, fmt.Errorf("%w: %s: %s", err_storage.ErrReadOrdersFile, path, err)
	}

	var orders entity.Orders
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", err_storage.ErrParseOrdersFile, path, err)
	}

	return orders, nil
}

func (s *Storage) save(path string, orders entity.Orders) error {
	if orders == nil {
		orders = entity.Orders{}
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", fileIndent)

	if err := encoder.Encode(orders); err != nil {
		return fmt.Errorf("error while encoding orders: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %s: %s", err_storage.ErrWriteOrdersFile, path, err)
	}

	return nil
}
