package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/neotaste/creator-portal/app/models"
	"github.com/neotaste/creator-portal/internal/pkg/cache"
	"github.com/neotaste/creator-portal/internal/pkg/database"
	"github.com/neotaste/creator-portal/internal/pkg/env"
)

const lockKey = "reconcile:invoice_flags"
const lockTTL = 5 * time.Minute

// Start runs the repair sweep periodically until the context is cancelled.
// The interval is configurable via RECONCILE_INTERVAL_MINUTES.
func Start(ctx context.Context) {
	minutes := 10
	if v := env.GetEnv("RECONCILE_INTERVAL_MINUTES", ""); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &minutes); err != nil || minutes <= 0 {
			minutes = 10
		}
	}

	ticker := time.NewTicker(time.Duration(minutes) * time.Minute)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := RunOnce(ctx); err != nil {
					log.Errorf("[Reconcile] Sweep failed: %v", err)
				}
			}
		}
	}()
}

// RunOnce repairs videos whose expense flag was lost between the invoice
// insert and the flag update. The sweep is serialized across instances
// with a redis lock.
func RunOnce(ctx context.Context) error {
	acquired, err := cache.AcquireLock(lockKey, uuid.New().String(), lockTTL)
	if err != nil {
		return fmt.Errorf("reconcile lock failed: %w", err)
	}
	if !acquired {
		log.Info("[Reconcile] Sweep already running elsewhere, skipping")
		return nil
	}
	defer func() {
		if err := cache.ReleaseLock(lockKey); err != nil {
			log.Warnf("[Reconcile] Failed to release lock: %v", err)
		}
	}()

	db := database.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	// Approved videos still marked open although a food expense invoice
	// already references them.
	result := db.Model(&models.Video{}).
		Where("status = ? AND invoice_submitted = ?", models.VideoStatusApproved, false).
		Where("id IN (?)", db.Model(&models.Invoice{}).
			Select("video_id").
			Where("type = ? AND video_id IS NOT NULL", models.InvoiceTypeFoodExpense)).
		Update("invoice_submitted", true)
	if result.Error != nil {
		return fmt.Errorf("repair expense flags failed: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		log.Infof("[Reconcile] Repaired expense flag on %d video(s)", result.RowsAffected)
	}
	return nil
}
