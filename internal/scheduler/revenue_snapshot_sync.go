// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-manager-api/infrastructure/repository"
	"github.com/vfg2006/invoice-manager-api/internal/config"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/invoicing"
)

type RevenueSnapshotSyncConfig struct {
	CronSchedule string
	YearLookback int
	SyncEnabled  bool
}

type RevenueSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	invoiceRepo         repository.InvoiceRepository
	snapshotRepo        repository.RevenueSnapshotRepository
	config              RevenueSnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRevenueSnapshotSyncService(
	invoiceRepo repository.InvoiceRepository,
	snapshotRepo repository.RevenueSnapshotRepository,
	cfg *config.Config,
) *RevenueSnapshotSyncService {
	syncConfig := RevenueSnapshotSyncConfig{
		CronSchedule: cfg.RevenueSnapshotSync.CronSchedule, // Default: 5h da manhã todos os dias
		YearLookback: cfg.RevenueSnapshotSync.YearLookback, // Default: recalcular também o ano anterior
		SyncEnabled:  cfg.RevenueSnapshotSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"year_lookback": syncConfig.YearLookback,
	}).Info("Configuração do agendador do snapshot de receita carregada")

	return &RevenueSnapshotSyncService{
		scheduler:    scheduler,
		invoiceRepo:  invoiceRepo,
		snapshotRepo: snapshotRepo,
		config:       syncConfig,
	}
}

func (s *RevenueSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do snapshot de receita desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do snapshot de receita")

	// Agendar a sincronização do snapshot de receita
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateRevenueSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do snapshot de receita")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do snapshot de receita: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do snapshot de receita")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RevenueSnapshotSyncService) UpdateRevenueSnapshots() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização do snapshot de receita já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização do snapshot de receita")

	now := time.Now()
	currentYear := now.Year()

	// Recalcular o ano corrente e os anos anteriores configurados
	for year := currentYear - s.config.YearLookback; year <= currentYear; year++ {
		if err := s.updateSnapshotForYear(year, now); err != nil {
			logrus.WithError(err).WithField("year", year).Error("Erro ao atualizar snapshot do ano")
			return err
		}
	}

	logrus.Info("Atualização do snapshot de receita concluída")

	return nil
}

func (s *RevenueSnapshotSyncService) updateSnapshotForYear(year int, now time.Time) error {
	invoices, err := s.invoiceRepo.ListInvoices(&year)
	if err != nil {
		return fmt.Errorf("erro ao listar faturas do ano %d: %w", year, err)
	}

	totals, err := s.invoiceRepo.TotalsByCustomerForYear(year)
	if err != nil {
		return fmt.Errorf("erro ao buscar faturamento por cliente do ano %d: %w", year, err)
	}

	snapshot := &domain.RevenueSnapshot{
		Year:              year,
		Metrics:           invoicing.ComputeRevenueMetrics(invoices, year, now),
		PerCustomerTotals: totals,
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		return fmt.Errorf("erro ao gravar snapshot do ano %d: %w", year, err)
	}

	logrus.WithFields(logrus.Fields{
		"year":      year,
		"total_ytd": snapshot.Metrics.TotalYTD,
		"customers": len(totals),
	}).Info("Snapshot de receita atualizado")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização do snapshot de receita
func (s *RevenueSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do snapshot de receita já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do snapshot de receita")
	go s.UpdateRevenueSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *RevenueSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"year_lookback":          s.config.YearLookback,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
