package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/srgjo27/scalable_field/internal/core/domain"
	"github.com/srgjo27/scalable_field/internal/platform/logger"
)

var ErrQueueFull = errors.New("export queue is full")

type Job struct {
	ID     string
	Filter domain.BookingFilter
}

// Runner executes one job. It owns the job's status record for the duration
// of the call and reports outcomes through it, never through a return value.
type Runner func(ctx context.Context, jobID string, filter domain.BookingFilter)

type Config struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Workers:    4,
		QueueSize:  100,
		JobTimeout: 5 * time.Minute,
	}
}

// Pool is a bounded pool of export workers fed by an in-process queue.
// Enqueue never blocks; a full queue is an error the submitter surfaces.
type Pool struct {
	cfg   Config
	queue chan Job
	run   Runner
	log   *logger.Logger
	wg    sync.WaitGroup

	inFlight  atomic.Int64
	processed atomic.Int64
}

func NewPool(cfg Config, log *logger.Logger) *Pool {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}

	return &Pool{
		cfg:   cfg,
		queue: make(chan Job, cfg.QueueSize),
		log:   log,
	}
}

// Start launches the workers. They drain the queue until ctx is canceled or
// Stop closes the queue.
func (p *Pool) Start(ctx context.Context, run Runner) {
	p.run = run

	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)

		go func(worker int) {
			defer p.wg.Done()

			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.queue:
					if !ok {
						return
					}

					p.execute(ctx, job)
				}
			}
		}(i)
	}

	p.log.Infow("export worker pool started", "workers", p.cfg.Workers, "queue_size", p.cfg.QueueSize)
}

// Enqueue implements ports.ExportQueue.
func (p *Pool) Enqueue(jobID string, filter domain.BookingFilter) error {
	select {
	case p.queue <- Job{ID: jobID, Filter: filter}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop closes the queue and waits for in-flight jobs, bounded by ctx.
func (p *Pool) Stop(ctx context.Context) error {
	close(p.queue)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.log.Infow("export worker pool stopped", "processed", p.processed.Load())
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats reports in-flight and processed job counts plus current queue depth.
func (p *Pool) Stats() (inFlight, processed int64, queued int) {
	return p.inFlight.Load(), p.processed.Load(), len(p.queue)
}

func (p *Pool) execute(ctx context.Context, job Job) {
	p.inFlight.Inc()
	defer p.inFlight.Dec()
	defer p.processed.Inc()

	jobCtx := ctx
	if p.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, p.cfg.JobTimeout)
		defer cancel()
	}

	p.run(jobCtx, job.ID, job.Filter)
}
