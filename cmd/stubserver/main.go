package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/blumenladen/dashboard/internal/api"
	"github.com/blumenladen/dashboard/internal/config"
	"github.com/blumenladen/dashboard/internal/stub"
	"github.com/blumenladen/dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	purchases := stub.DefaultPurchases()
	if cfg.Stub.FixturesPath != "" {
		purchases, err = stub.LoadFixtures(cfg.Stub.FixturesPath)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao carregar as compras do stub")
		}
	}

	logrus.WithFields(logrus.Fields{
		"purchases": len(purchases),
		"fixtures":  cfg.Stub.FixturesPath,
	}).Info("Catálogo do stub carregado")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := api.New(cfg, stub.NewCatalog(purchases))
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
