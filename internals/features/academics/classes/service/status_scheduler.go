// file: internals/features/academics/classes/service/status_scheduler.go
package service

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// StartSessionStatusScheduler runs the status sweep on a fixed interval
// (SESSION_SWEEP_MINUTES, default 10). Call once after the DB is up.
func StartSessionStatusScheduler(db *gorm.DB) {
	go func() {
		intervalMin := 10
		if val := os.Getenv("SESSION_SWEEP_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMin = parsed
			}
		}

		engine := NewEngine(db)
		for {
			if err := engine.RefreshSessionStatuses(context.Background()); err != nil {
				log.Printf("[SESSION-SWEEP ERROR] %v", err)
			}
			time.Sleep(time.Duration(intervalMin) * time.Minute)
		}
	}()
}
