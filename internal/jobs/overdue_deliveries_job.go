package jobs

import (
	"context"
	"log/slog"
	"time"

	"distributor/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueSchedule checks once a minute.
const DefaultOverdueSchedule = "* * * * *"

// OverdueDeliveriesFinder is satisfied by queries.GetOverdueDeliveriesQueryHandler.
type OverdueDeliveriesFinder interface {
	Handle(ctx context.Context, query queries.GetOverdueDeliveriesQuery) ([]queries.GetOverdueDeliveriesQueryResponse, error)
}

// OverdueDeliveriesJob warns about pending or in-transit deliveries past their expected
// time. It only reads.
type OverdueDeliveriesJob struct {
	finder   OverdueDeliveriesFinder
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueDeliveriesJob accepts a five-field cron expression or a descriptor such as
// "@every 30s". An empty schedule means DefaultOverdueSchedule.
func NewOverdueDeliveriesJob(finder OverdueDeliveriesFinder, schedule string, logger *slog.Logger) *OverdueDeliveriesJob {
	if schedule == "" {
		schedule = DefaultOverdueSchedule
	}
	return &OverdueDeliveriesJob{
		finder:   finder,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(),
		logger:   logger.With("component", "overdue_deliveries_job"),
	}
}

// Start schedules the check. An invalid schedule is reported here.
func (j *OverdueDeliveriesJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue deliveries job started", "schedule", j.schedule)
	return nil
}

// RunOnce logs one warning per overdue delivery and returns how many were found.
func (j *OverdueDeliveriesJob) RunOnce(ctx context.Context) int {
	query, err := queries.NewGetOverdueDeliveriesQuery(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue deliveries job failed", "error", err)
		return 0
	}

	overdue, err := j.finder.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue deliveries job failed", "error", err)
		return 0
	}

	for _, d := range overdue {
		j.logger.WarnContext(ctx, "Delivery is overdue",
			"delivery_id", d.ID.String(),
			"customer", d.CustomerName,
			"driver", d.DriverName,
			"status", d.Status,
			"expected_delivery_at", d.ExpectedDeliveryAt,
			"overdue", d.Overdue.Round(time.Minute).String(),
		)
	}
	return len(overdue)
}

// Stop waits for a running check to finish.
func (j *OverdueDeliveriesJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue deliveries job stopped")
}
