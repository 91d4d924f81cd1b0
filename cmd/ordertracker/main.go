package main

import (
	"os"

	"github.com/avGenie/go-order-tracker/internal/app/config"
	"github.com/avGenie/go-order-tracker/internal/app/controller/cli/menu"
	"github.com/avGenie/go-order-tracker/internal/app/controller/cli/prompt"
	"github.com/avGenie/go-order-tracker/internal/app/logger"
	storage "github.com/avGenie/go-order-tracker/internal/app/storage/api"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}

	store, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while creating storage", zap.Error(err))
	}
	defer store.Close()

	pending, err := store.LoadPending()
	if err != nil {
		zap.L().Fatal("error while loading pending orders", zap.Error(err))
	}

	fulfilled, err := store.LoadFulfilled()
	if err != nil {
		zap.L().Fatal("error while loading fulfilled orders", zap.Error(err))
	}

	prompter := prompt.New(os.Stdin, os.Stdout)

	err = menu.New(prompter, store, os.Stdout, pending, fulfilled).Run()
	if err != nil {
		zap.L().Fatal("error while running menu loop", zap.Error(err))
	}
}
