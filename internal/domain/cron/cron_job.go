package cron

import (
	"context"
	"sync"
	"time"

	"github.com/fc-footy/backend/pkg/xcontext"
)

type CronJob interface {
	Do(context.Context)
	RunNow() bool
	Next() time.Time
}

// CronJobManager drives each registered job on its own schedule. Cancelling
// the context passed to Start stops every job.
type CronJobManager struct {
	jobs []CronJob
}

func NewCronJobManager() *CronJobManager {
	return &CronJobManager{}
}

func (m *CronJobManager) Register(job CronJob) {
	m.jobs = append(m.jobs, job)
}

// Start blocks until ctx is cancelled and every job loop has returned.
func (m *CronJobManager) Start(ctx context.Context) {
	xcontext.Logger(ctx).Infof("Cron job manager started with %d jobs", len(m.jobs))

	var wait sync.WaitGroup
	for _, job := range m.jobs {
		wait.Add(1)
		go func(job CronJob) {
			defer wait.Done()
			m.loop(ctx, job)
		}(job)
	}

	wait.Wait()
	xcontext.Logger(ctx).Infof("Cron job manager stopped")
}

func (m *CronJobManager) loop(ctx context.Context, job CronJob) {
	if job.RunNow() {
		m.run(ctx, job)
	}

	for {
		timer := time.NewTimer(time.Until(job.Next()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			m.run(ctx, job)
		}
	}
}

func (m *CronJobManager) run(ctx context.Context, job CronJob) {
	xcontext.Logger(ctx).Debugf("%T is running...", job)
	job.Do(ctx)
	xcontext.Logger(ctx).Debugf("%T ok", job)
}
