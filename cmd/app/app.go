package main

import (
	"os"

	"github.com/DRSN-tech/inventory-view/internal/app"
	config "github.com/DRSN-tech/inventory-view/internal/cfg"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
)

//	@title			Inventory View API
//	@version		1.0
//	@description	Учёт товаров на складе: карточки, редактирование полей, маржа и уведомления.
//	@host			localhost:8080
//	@BasePath		/api/v1
func main() {
	log := logger.NewZeroLogger(config.LoadLogLevel())

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
