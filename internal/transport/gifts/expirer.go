// Package gifts содержит фоновый процесс экспирации неподтвержденных
// подарков.
package gifts

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultExpireTimeout = 30 * time.Second

// GiftExpirer сервисный слой экспирации просроченных подарков.
type GiftExpirer interface {
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}

// Expirer периодически отклоняет подарки, не востребованные до дедлайна.
type Expirer struct {
	svs      GiftExpirer
	interval time.Duration
	l        *logrus.Entry
}

func NewExpirer(svs GiftExpirer, interval time.Duration, l *logrus.Logger) *Expirer {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "gifts",
		"module":    "expirer",
	})

	return &Expirer{
		svs:      svs,
		interval: interval,
		l:        loggerEntry,
	}
}

// Run запускает цикл экспирации до отмены контекста.
func (e *Expirer) Run(ctx context.Context) {
	e.l.WithField("interval", e.interval).Info("Starting")

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			e.expire(ctx)
		}
	}
}

func (e *Expirer) expire(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultExpireTimeout)
	defer cancel()

	count, err := e.svs.ExpireOverdue(reqCtx, time.Now())
	if err != nil {
		e.l.WithError(err).Error("expire gifts")
	}
	if count > 0 {
		e.l.WithField("expired", count).Info("Expired overdue gifts")
	}
}
