package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/blumenladen/dashboard/infrastructure/integrator/blumenladen"
	"github.com/blumenladen/dashboard/internal/config"
	"github.com/blumenladen/dashboard/pkg/log"
)

// RefreshService agenda o pedido de releitura das faturas no serviço Blumenladen
type RefreshService struct {
	scheduler   *gocron.Scheduler
	config      config.Refresh
	integrator  blumenladen.Integrator
	baseCtx     context.Context
	syncRunning bool
	syncMutex   sync.Mutex

	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDate            string
	lastSuccess         bool
}

// NewRefreshService cria o agendador com a configuração carregada
func NewRefreshService(integrator blumenladen.Integrator, appConfig *config.Config) *RefreshService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":   appConfig.Refresh.CronSchedule,
		"refresh_enabled": appConfig.Refresh.Enabled,
	}).Info("scheduler: flower refresh configuration loaded")

	return &RefreshService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     appConfig.Refresh,
		integrator: integrator,
		baseCtx:    context.Background(),
	}
}

// Start agenda a atualização e para o agendador quando ctx for cancelado
func (s *RefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("scheduler: flower refresh disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting flower refresh")

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshFlowers()
	})
	if err != nil {
		return fmt.Errorf("scheduler: invalid refresh cron %q: %w", s.config.CronSchedule, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping flower refresh")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshFlowers executa uma atualização; devolve false quando outra já está em andamento
func (s *RefreshService) refreshFlowers() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: flower refresh already running, skipping")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)
	logger.Info("scheduler: requesting flower refresh")

	resp := s.integrator.UpdateFlowers(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSuccess = resp != nil && resp.Success
	if s.lastSuccess {
		s.lastDate = resp.Date
	}

	logger.WithFields(log.Fields{
		"success":  s.lastSuccess,
		"date":     s.lastDate,
		"duration": s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Info("scheduler: flower refresh finished")

	return true
}

// TriggerManualSync inicia uma atualização em segundo plano, a menos que já exista uma rodando
func (s *RefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: flower refresh already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("scheduler: manual flower refresh requested")
	go s.refreshFlowers()
}

// IsRunning informa se há uma atualização em andamento
func (s *RefreshService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *RefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"refresh_enabled":        s.config.Enabled,
		"refresh_cron":           s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_success":           s.lastSuccess,
		"last_date":              s.lastDate,
	}
}
