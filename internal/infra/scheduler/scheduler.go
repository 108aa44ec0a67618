package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Poller is the tick the scheduler drives.
type Poller interface {
	Poll(ctx context.Context)
}

// PollScheduler fires one poll tick at a fixed interval, regardless of how
// the previous tick ended. The interval is the loop's only retry mechanism.
// Ticks never overlap: a tick that outlives the interval makes the next one
// a no-op, so the poller's state is only ever touched by one goroutine at a
// time.
type PollScheduler struct {
	cronEngine *cron.Cron
	poller     Poller
	logger     *logrus.Entry
	interval   time.Duration

	running sync.Mutex // held for the duration of a tick
	wg      sync.WaitGroup
}

func NewPollScheduler(poller Poller, interval time.Duration, logger *logrus.Entry) *PollScheduler {
	return &PollScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)),
		poller:     poller,
		logger:     logger,
		interval:   interval,
	}
}

func (s *PollScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(fmt.Sprintf("@every %s", s.interval), s.runTick)
	if err != nil {
		return fmt.Errorf("failed to schedule poll job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.WithField("interval", s.interval.String()).Info("Poll scheduler started")

	// First check should not wait a full interval.
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runTick()
	}()

	return nil
}

func (s *PollScheduler) runTick() {
	if !s.running.TryLock() {
		s.logger.Warn("Previous poll tick still running, skipping this one")
		return
	}
	defer s.running.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("Poll tick panicked: %v", r)
		}
	}()

	s.logger.Debug("Poll tick triggered")

	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	s.poller.Poll(ctx)
}

func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops scheduling new ticks, waits for a running one.
	<-ctx.Done()
	s.wg.Wait() // The bootstrap tick may still be in flight.
	s.logger.Info("Poll scheduler gracefully stopped")
}
