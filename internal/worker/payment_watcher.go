package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the watcher.
type StorefrontFacade interface {
	StaleOnlineOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (*model.Order, error)
}

// PaymentWatcher cancels online orders whose payment never arrived. It polls
// for stale unpaid orders and fans them out to a small worker pool.
type PaymentWatcher struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	maxAge       time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentWatcher constructs the watcher worker pool.
func NewPaymentWatcher(facade StorefrontFacade, pollInterval, maxAge time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentWatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentWatcher{
		facade:       facade,
		pollInterval: pollInterval,
		maxAge:       maxAge,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (w *PaymentWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker(runCtx)
	}

	w.wg.Add(1)
	go w.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (w *PaymentWatcher) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *PaymentWatcher) dispatch(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.jobs)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.fetchAndDispatch(ctx)
		}
	}
}

func (w *PaymentWatcher) fetchAndDispatch(ctx context.Context) {
	orders, err := w.facade.StaleOnlineOrders(ctx, w.maxAge, w.batchSize)
	if err != nil {
		w.logger.Error("fetch stale orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case w.jobs <- order:
		}
	}
}

func (w *PaymentWatcher) worker(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-w.jobs:
			if !ok {
				return
			}
			w.handleOrder(ctx, order)
		}
	}
}

func (w *PaymentWatcher) handleOrder(ctx context.Context, order model.Order) {
	if _, err := w.facade.CancelOrder(ctx, order.ID); err != nil {
		// Another update may have raced this one; a blocked transition just
		// means the order moved on.
		if errors.Is(err, domainErrors.ErrInvalidTransition) || errors.Is(err, domainErrors.ErrNotFound) {
			return
		}
		w.logger.Error("cancel stale order failed",
			slog.Int64("order", order.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	w.logger.Info("cancelled unpaid online order", slog.Int64("order", order.ID))
}
