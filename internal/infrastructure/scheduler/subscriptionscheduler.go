// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"sync"
	"time"

	subscriptionUC "thali/internal/application/subscription/usecases"
	"thali/internal/shared/goroutine"
	"thali/internal/shared/logger"
)

// SubscriptionScheduler marks lapsed subscriptions EXPIRED once a day.
// The read path decides behavior from end_date directly; this job keeps the
// stored status consistent for reports and listings.
type SubscriptionScheduler struct {
	expireUseCase *subscriptionUC.ExpireSubscriptionsUseCase
	logger        logger.Interface
	interval      time.Duration
	stopChan      chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
}

func NewSubscriptionScheduler(
	expireUseCase *subscriptionUC.ExpireSubscriptionsUseCase,
	log logger.Interface,
) *SubscriptionScheduler {
	return &SubscriptionScheduler{
		expireUseCase: expireUseCase,
		logger:        log,
		interval:      24 * time.Hour,
		stopChan:      make(chan struct{}),
	}
}

func (s *SubscriptionScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting subscription scheduler", "interval", s.interval)

	s.wg.Add(1)
	goroutine.SafeGo(s.logger, "subscription_expiry", func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	})
}

func (s *SubscriptionScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("subscription scheduler stopped")
	})
}

func (s *SubscriptionScheduler) runLoop(ctx context.Context) {
	// Clear any backlog immediately on startup.
	s.processExpired(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.processExpired(ctx)
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *SubscriptionScheduler) processExpired(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	marked, err := s.expireUseCase.Execute(runCtx)
	if err != nil {
		s.logger.Errorw("subscription expiry run failed", "error", err)
		return
	}
	if marked > 0 {
		s.logger.Infow("subscriptions marked expired", "count", marked)
	}
}
