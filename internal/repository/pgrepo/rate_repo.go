package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/pkg/uow"
)

// RateRepository хранит единственный действующий курс USD/VES, задаваемый
// оператором. Таблица содержит не более одной строки.
type RateRepository struct {
	conn uow.DBTX
}

func NewRateRepository(conn uow.DBTX) *RateRepository {
	return &RateRepository{conn: conn}
}

func (r *RateRepository) Get(ctx context.Context) (*domain.SystemRate, error) {
	var rate domain.SystemRate
	err := r.conn.QueryRow(ctx,
		`SELECT id, updated_at, rate FROM system_rates WHERE id = 1`,
	).Scan(&rate.ID, &rate.UpdatedAt, &rate.Rate)
	if err != nil {
		return nil, convertErr(err, "getting system rate")
	}
	return &rate, nil
}

func (r *RateRepository) Upsert(ctx context.Context, value decimal.Decimal) (*domain.SystemRate, error) {
	var rate domain.SystemRate
	err := r.conn.QueryRow(ctx,
		`INSERT INTO system_rates (id, rate, updated_at)
		 VALUES (1, $1, now())
		 ON CONFLICT (id) DO UPDATE SET rate = EXCLUDED.rate, updated_at = now()
		 RETURNING id, updated_at, rate`,
		value,
	).Scan(&rate.ID, &rate.UpdatedAt, &rate.Rate)
	if err != nil {
		return nil, convertErr(err, "setting system rate")
	}
	return &rate, nil
}

// Delete снимает операторский курс, после чего сервис курса возвращается к
// котировкам внешнего источника.
func (r *RateRepository) Delete(ctx context.Context) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM system_rates WHERE id = 1`)
	if err != nil {
		return convertErr(err, "deleting system rate")
	}
	return nil
}
