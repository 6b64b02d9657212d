package rates

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const defaultRefreshTimeout = 10 * time.Second

// Quoter сервисный слой обновления котировки.
type Quoter interface {
	RefreshQuote(ctx context.Context) (decimal.Decimal, error)
}

// Refresher периодически обновляет кешированную котировку USD/VES.
// Ошибки обновления логируются, процесс продолжает работу со старым кешем.
type Refresher struct {
	svs      Quoter
	interval time.Duration
	l        *logrus.Entry
}

func NewRefresher(svs Quoter, interval time.Duration, l *logrus.Logger) *Refresher {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "rates",
		"module":    "refresher",
	})

	return &Refresher{
		svs:      svs,
		interval: interval,
		l:        loggerEntry,
	}
}

// Run запускает цикл обновления котировки до отмены контекста. Первое
// обновление выполняется сразу при старте, далее по тикеру.
func (r *Refresher) Run(ctx context.Context) {
	r.l.WithField("interval", r.interval).Info("Starting")

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultRefreshTimeout)
	defer cancel()

	rate, err := r.svs.RefreshQuote(reqCtx)
	if err != nil {
		r.l.WithError(err).Error("refresh quote")
		return
	}
	r.l.WithField("rate", rate).Info("Quote refreshed")
}
