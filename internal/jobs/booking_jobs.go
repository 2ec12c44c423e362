package jobs

import (
	"context"
	"time"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/logger"
)

// CompleteElapsedBookings moves approved bookings past their end date to
// COMPLETED and reactivates the tools so they can be booked again.
func (jr *JobRunner) CompleteElapsedBookings() {
	jr.runWithRecovery("CompleteElapsedBookings", func() {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET status = 'COMPLETED',
			    updated_on = NOW()
			WHERE status = 'APPROVED'
			  AND end_date < $1
			RETURNING id, tool_id, renter_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to complete elapsed bookings", "error", err)
			return
		}
		defer rows.Close()

		type completed struct {
			ID       string
			ToolID   string
			RenterID string
			EndDate  string
		}
		var done []completed

		for rows.Next() {
			var c completed
			if err := rows.Scan(&c.ID, &c.ToolID, &c.RenterID, &c.EndDate); err != nil {
				logger.Error("Failed to scan completed booking", "error", err)
				continue
			}
			done = append(done, c)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating completed bookings", "error", err)
			return
		}

		logger.Info("Completed elapsed bookings", "count", len(done))

		today := time.Now().Format("2006-01-02")
		for _, c := range done {
			// Back-to-back rentals: only reactivate when no other approved
			// window covers today.
			active := true
			overlapping, err := jr.store.BookingRepository.FindOverlapping(ctx, c.ToolID, today, today)
			if err != nil {
				logger.Error("Failed to check tool availability", "tool_id", c.ToolID, "error", err)
				continue
			}
			for _, b := range overlapping {
				if b.Status == domain.BookingStatusApproved {
					active = false
					break
				}
			}
			if err := jr.store.ToolRepository.SetActive(ctx, c.ToolID, active); err != nil {
				logger.Error("Failed to reactivate tool", "tool_id", c.ToolID, "error", err)
			}
			logger.Debug("Completed booking",
				"booking_id", c.ID,
				"tool_id", c.ToolID,
				"renter_id", c.RenterID,
				"end_date", c.EndDate)
		}
	})
}
