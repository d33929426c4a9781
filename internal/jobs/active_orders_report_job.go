package jobs

import (
	"context"
	"log/slog"

	"hubfleet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ActiveOrdersReportJob periodically logs the active-order count per hub,
// giving operators a workload picture without querying the database by hand.
type ActiveOrdersReportJob struct {
	handler  queries.GetActiveOrderCountsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewActiveOrdersReportJob creates the report job. schedule is a six-field
// cron expression.
func NewActiveOrdersReportJob(
	handler queries.GetActiveOrderCountsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *ActiveOrdersReportJob {
	return &ActiveOrdersReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "active_orders_report_job"),
	}
}

// Start begins the report job on its schedule.
func (j *ActiveOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetActiveOrderCountsQuery()

		counts, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Active orders report job failed", "error", err)
			return
		}

		if len(counts) == 0 {
			j.logger.InfoContext(ctx, "No active orders")
			return
		}

		for _, count := range counts {
			j.logger.InfoContext(ctx, "Active orders", "hub", count.HubID, "count", count.Count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Active orders report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the report job.
func (j *ActiveOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Active orders report job stopped")
}
