package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/blumenladen/dashboard/infrastructure/integrator/blumenladen"
	"github.com/blumenladen/dashboard/infrastructure/integrator/blumenladen/blumenladenclient"
	"github.com/blumenladen/dashboard/internal/config"
	"github.com/blumenladen/dashboard/internal/report"
	"github.com/blumenladen/dashboard/internal/scheduler"
	"github.com/blumenladen/dashboard/pkg/log"
)

const usage = `usage: dashboard <command> [args]

commands:
  version                        data da última atualização
  update                         pede ao serviço que releia as faturas
  inventory                      compra mais recente de cada flor
  flower <product_id>            histórico de compras de uma flor
  costs <group_by> [from] [to]   custos agrupados (product_id, date, month, year)
  schedule                       executa o agendador de atualização até SIGINT
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := blumenladen.New(cfg, blumenladenclient.NewClient(cfg))

	if err := run(ctx, cfg, service, flag.Args()); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, service *blumenladen.Service, args []string) error {
	out := os.Stdout

	switch args[0] {
	case "version":
		return report.Version(out, service.GetLastUpdated(ctx))

	case "update":
		return report.Version(out, service.UpdateFlowers(ctx))

	case "inventory":
		return report.Inventory(out, service.Inventory(ctx))

	case "flower":
		if len(args) < 2 {
			return fmt.Errorf("flower: missing product_id")
		}
		return report.Flower(out, service.GetFlower(ctx, args[1]))

	case "costs":
		if len(args) < 2 {
			return fmt.Errorf("costs: missing group_by")
		}
		var from, to string
		if len(args) > 2 {
			from = args[2]
		}
		if len(args) > 3 {
			to = args[3]
		}
		return report.Costs(out, service.CostReport(ctx, args[1], from, to))

	case "schedule":
		refresh := scheduler.NewRefreshService(service, cfg)
		if err := refresh.Start(ctx); err != nil {
			return err
		}
		if !cfg.Refresh.Enabled {
			logrus.Info("REFRESH_ENABLED=false, executando uma atualização manual")
			refresh.TriggerManualSync()
		}
		<-ctx.Done()
		logrus.WithFields(logrus.Fields(refresh.GetStatus())).Info("Agendador encerrado")
		return nil

	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}
