package jobs

import (
	"context"
	"time"

	"github.com/piyush898784/rentz/internal/logger"
)

// CompleteExpiredRentals marks active rentals past their end date as
// completed and returns their products to the available pool. This is the
// only automated rented-to-available transition in the system.
func (jr *JobRunner) CompleteExpiredRentals() {
	jr.runWithRecovery("CompleteExpiredRentals", func() {
		ctx := context.Background()

		count, err := jr.rentalRepo.CompleteExpired(ctx, time.Now().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to complete expired rentals", "error", err)
			return
		}
		logger.Info("Completed expired rentals", "count", count)
	})
}
