package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the report at the start of every minute.
const DefaultBacklogSchedule = "0 * * * * *"

type backlogCounter interface {
	Handle(ctx context.Context, query queries.GetOrderBacklogQuery) ([]queries.GetOrderBacklogQueryResponse, error)
}

// OrderBacklogJob periodically logs how many orders sit in each open status.
type OrderBacklogJob struct {
	handler  backlogCounter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogJob creates the job. schedule is a six-field cron
// expression with seconds; empty means DefaultBacklogSchedule.
func NewOrderBacklogJob(handler backlogCounter, schedule string, logger *slog.Logger) *OrderBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &OrderBacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

// Start registers the report and starts the scheduler.
func (j *OrderBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}

func (j *OrderBacklogJob) run(ctx context.Context) {
	backlog, err := j.handler.Handle(ctx, queries.NewGetOrderBacklogQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(backlog)+2)
	var total int64
	for _, b := range backlog {
		attrs = append(attrs, b.Status.String(), b.Count)
		total += b.Count
	}
	attrs = append(attrs, "total", total)

	j.logger.InfoContext(ctx, "Open orders", attrs...)
}
