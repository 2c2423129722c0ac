// Package worker периодически обновляет курсы обмена из внешнего сервиса.
package worker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/service"
	"github.com/bsm/redislock"
	"go.uber.org/zap"
)

// DefaultScanInterval интервал обновления курсов по умолчанию
const DefaultScanInterval = time.Hour

// Config параметры пула обновления курсов
type Config struct {
	Workers      int
	QueueSize    int
	Base         string
	Quotes       []string
	ScanInterval time.Duration
}

// RatesPool пул воркеров, загружающих курсы base→quote для каждой валюты из Quotes
type RatesPool struct {
	workers      int
	queue        chan string
	base         string
	quotes       []string
	scanInterval time.Duration
	client       domain.RatesClient
	rateRepo     domain.ExchangeRateRepository
	locker       *redislock.Client
	logger       *zap.Logger
	wg           sync.WaitGroup
	scannerWG    sync.WaitGroup
	stopOnce     sync.Once
}

// NewRatesPool создает новый пул. При nil locker блокировка между репликами не используется.
func NewRatesPool(
	cfg Config,
	client domain.RatesClient,
	rateRepo domain.ExchangeRateRepository,
	locker *redislock.Client,
	logger *zap.Logger,
) *RatesPool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = len(cfg.Quotes)
	}
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = DefaultScanInterval
	}
	if cfg.Base == "" {
		cfg.Base = service.BaseCurrency
	}

	quotes := make([]string, 0, len(cfg.Quotes))
	for _, q := range cfg.Quotes {
		if q = strings.ToUpper(strings.TrimSpace(q)); q != "" {
			quotes = append(quotes, q)
		}
	}

	return &RatesPool{
		workers:      cfg.Workers,
		queue:        make(chan string, cfg.QueueSize),
		base:         strings.ToUpper(cfg.Base),
		quotes:       quotes,
		scanInterval: cfg.ScanInterval,
		client:       client,
		rateRepo:     rateRepo,
		locker:       locker,
		logger:       logger,
	}
}

// Start запускает воркеры и планировщик
func (p *RatesPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.scannerWG.Add(1)
	go p.scanner(ctx)
}

// Stop дожидается завершения планировщика и воркеров. Вызывается после отмены контекста Start.
func (p *RatesPool) Stop() {
	p.stopOnce.Do(func() {
		p.scannerWG.Wait()
		close(p.queue)
	})
	p.wg.Wait()
}

func (p *RatesPool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("rates worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("rates worker stopping", zap.Int("worker_id", id))
			return
		case quote, ok := <-p.queue:
			if !ok {
				return
			}
			p.process(ctx, quote)
		}
	}
}

// scanner ставит все пары в очередь сразу и затем раз в интервал
func (p *RatesPool) scanner(ctx context.Context) {
	defer p.scannerWG.Done()

	p.enqueue(ctx)

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("rates scanner stopping")
			return
		case <-ticker.C:
			p.enqueue(ctx)
		}
	}
}

func (p *RatesPool) enqueue(ctx context.Context) {
	for _, quote := range p.quotes {
		select {
		case p.queue <- quote:
		case <-ctx.Done():
			return
		default:
			p.logger.Warn("rates queue is full, skipping pair",
				zap.String("base", p.base),
				zap.String("quote", quote),
			)
		}
	}
}

// process загружает и сохраняет курс одной пары
func (p *RatesPool) process(ctx context.Context, quote string) {
	log := p.logger.With(zap.String("base", p.base), zap.String("quote", quote))

	var lock *redislock.Lock
	if p.locker != nil {
		var err error
		lock, err = p.locker.Obtain(ctx, LockKey(quote), p.lockTTL(), nil)
		if errors.Is(err, redislock.ErrNotObtained) {
			log.Debug("rate is refreshed by another replica")
			return
		}
		if err != nil {
			log.Error("failed to obtain rates lock", zap.Error(err))
			return
		}
	}

	// После успешного обновления блокировка живет до конца интервала,
	// после ошибки снимается, чтобы пару могла обновить другая реплика
	if p.refresh(ctx, log, quote) || lock == nil {
		return
	}
	if err := lock.Release(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
		log.Warn("failed to release rates lock", zap.Error(err))
	}
}

// refresh возвращает false, если курс не удалось получить или сохранить
func (p *RatesPool) refresh(ctx context.Context, log *zap.Logger, quote string) bool {
	resp, err := p.client.GetRate(ctx, p.base, quote)
	if err != nil {
		var rateLimitErr *service.RateLimitError
		if errors.As(err, &rateLimitErr) {
			log.Warn("rates provider rate limit exceeded", zap.Duration("retry_after", rateLimitErr.RetryAfter))
			wait(ctx, rateLimitErr.RetryAfter)
			return false
		}
		log.Error("failed to fetch rate", zap.Error(err))
		return false
	}

	if resp == nil {
		log.Warn("rates provider does not know the pair")
		return true
	}

	if err := p.rateRepo.SaveRate(ctx, p.base, quote, resp.Rate); err != nil {
		log.Error("failed to save rate", zap.Error(err))
		return false
	}

	log.Info("rate refreshed", zap.String("rate", resp.Rate.String()))
	return true
}

func (p *RatesPool) lockTTL() time.Duration {
	return p.scanInterval * 9 / 10
}

// LockKey ключ блокировки обновления пары
func LockKey(quote string) string {
	return "lock:rates:" + quote
}

func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
