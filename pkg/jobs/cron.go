package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/pkg/users"
	"github.com/horeca-prospection/backend/pkg/visits"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron         *cron.Cron
	db           *ent.Client
	visitService *visits.Service
	authService  *users.AuthService
	logger       *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, visitService *visits.Service, authService *users.AuthService, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:         cron.New(),
		db:           db,
		visitService: visitService,
		authService:  authService,
		logger:       logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Nightly at 3 AM: reconcile prospect aggregates. The write path
	// keeps them in sync; this catches drift from crashed requests.
	_, err := cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Running nightly prospect stats reconciliation...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		ids, err := cm.db.Prospect.Query().
			Select(prospect.FieldID).
			IDs(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to list prospects: %v", err)
			return
		}

		fixed := 0
		for _, id := range ids {
			if err := cm.visitService.RecomputeProspectStats(ctx, id); err != nil {
				cm.logger.Printf("⚠️ Failed to recompute stats for prospect %s: %v", id, err)
				continue
			}
			fixed++
		}

		cm.logger.Printf("✅ Reconciled stats for %d prospects", fixed)
	})
	if err != nil {
		return err
	}

	// Nightly at 4 AM: purge expired refresh tokens
	_, err = cm.cron.AddFunc("0 4 * * *", func() {
		cm.logger.Println("🕐 Running refresh token purge...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		n, err := cm.authService.PurgeExpiredTokens(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to purge refresh tokens: %v", err)
			return
		}

		cm.logger.Printf("✅ Purged %d expired refresh tokens", n)
	})
	if err != nil {
		return err
	}

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("Stopping cron scheduler...")
	cm.cron.Stop()
}
