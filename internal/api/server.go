package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/blumenladen/dashboard/internal/api/handler"
	"github.com/blumenladen/dashboard/internal/api/handler/router"
	"github.com/blumenladen/dashboard/internal/config"
	"github.com/blumenladen/dashboard/internal/stub"
	"github.com/blumenladen/dashboard/pkg/middleware"
)

// Server expõe o catálogo em memória com a mesma superfície HTTP do serviço Blumenladen
type Server struct {
	httpServer *http.Server
	faults     *middleware.FaultInjector
}

func New(config *config.Config, catalog *stub.Catalog) *Server {
	faults := middleware.NewFaultInjector()

	return &Server{
		httpServer: &http.Server{
			Addr:              config.Addr(),
			Handler:           NewHandler(catalog, faults),
			ReadHeaderTimeout: 2 * time.Second,
		},
		faults: faults,
	}
}

// NewHandler monta rotas e middlewares; usado também pelos testes com httptest
func NewHandler(catalog *stub.Catalog, faults *middleware.FaultInjector) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Version(catalog)...),
		router.WithRoutes(handler.Flowers(catalog)...),
		router.WithRoutes(handler.Costs(catalog)...),
		router.WithRoutes(handler.Admin(faults)...),
		router.WithNotFound(handler.NotFound()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		faults.Middleware(),
	}

	return alice.New(middlewares...).Then(rt)
}

// Faults permite simular falhas do serviço
func (s *Server) Faults() *middleware.FaultInjector {
	return s.faults
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor stub iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
