package storage

import (
	"fmt"

	"github.com/avGenie/go-order-tracker/internal/app/config"
	"github.com/avGenie/go-order-tracker/internal/app/storage/api/model"
	storage "github.com/avGenie/go-order-tracker/internal/app/storage/file"
)

func InitStorage(config config.Config) (model.Storage, error) {
	if len(config.PendingFile) == 0 || len(config.FulfilledFile) == 0 {
		return nil, fmt.Errorf("empty orders file config")
	}

	return storage.NewFileStorage(config.PendingFile, config.FulfilledFile), nil
}
