package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

const fundingColumns = `id, created_at, updated_at, customer_id, amount, platform, status,
	reference, fee, error, usd_exchange_rate`

// FundingRepository хранит пополнения через платежные шлюзы. Reference шлюза
// уникален, повторная запись того же вебхука вернет ErrDuplicateKey.
type FundingRepository struct {
	conn uow.DBTX
}

func NewFundingRepository(conn uow.DBTX) *FundingRepository {
	return &FundingRepository{conn: conn}
}

func (r *FundingRepository) Create(
	ctx context.Context,
	args repoargs.CreateFunding,
) (*domain.Funding, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO fundings (customer_id, amount, platform, status, reference, fee, error, usd_exchange_rate)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+fundingColumns,
		args.CustomerID, args.Amount, string(args.Platform), string(args.Status),
		args.Reference, args.Fee, args.Error, args.Rate,
	)
	funding, err := scanFunding(row)
	if err != nil {
		return nil, convertErr(err, "creating funding %s", args.Reference)
	}
	return funding, nil
}

func (r *FundingRepository) GetByID(ctx context.Context, id int64) (*domain.Funding, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+fundingColumns+` FROM fundings WHERE id = $1`, id)
	funding, err := scanFunding(row)
	if err != nil {
		return nil, convertErr(err, "getting funding %d", id)
	}
	return funding, nil
}

// GetByIDForUpdate читает пополнение с блокировкой строки. Вызывается только
// внутри транзакции.
func (r *FundingRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Funding, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+fundingColumns+` FROM fundings WHERE id = $1 FOR UPDATE`, id)
	funding, err := scanFunding(row)
	if err != nil {
		return nil, convertErr(err, "locking funding %d", id)
	}
	return funding, nil
}

// UpdateStatus меняет статус пополнения. Курс записывается, только если он
// передан и еще не был зафиксирован: по нему восстанавливается сумма
// зачисления на счет платформы в локальной валюте.
func (r *FundingRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.FundingStatus,
	fundingErr *string,
	rate *decimal.Decimal,
) (*domain.Funding, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE fundings SET status = $2, error = $3,
			usd_exchange_rate = COALESCE(usd_exchange_rate, $4), updated_at = now()
		 WHERE id = $1
		 RETURNING `+fundingColumns,
		id, string(status), fundingErr, rate,
	)
	funding, err := scanFunding(row)
	if err != nil {
		return nil, convertErr(err, "updating funding %d status", id)
	}
	return funding, nil
}

func (r *FundingRepository) List(ctx context.Context, limit uint) ([]domain.Funding, error) {
	if limit == 0 || limit > 1000 {
		limit = 100
	}
	rows, err := r.conn.Query(ctx,
		`SELECT `+fundingColumns+` FROM fundings ORDER BY created_at DESC, id DESC LIMIT `+itoa(limit))
	if err != nil {
		return nil, convertErr(err, "listing fundings")
	}
	defer rows.Close()

	var fundings []domain.Funding
	for rows.Next() {
		funding, scanErr := scanFunding(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning funding")
		}
		fundings = append(fundings, *funding)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing fundings")
	}
	return fundings, nil
}

func scanFunding(row rowScanner) (*domain.Funding, error) {
	var f domain.Funding
	var platform, status string
	err := row.Scan(
		&f.ID, &f.CreatedAt, &f.UpdatedAt, &f.CustomerID, &f.Amount, &platform, &status,
		&f.Reference, &f.Fee, &f.Error, &f.Rate,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	f.Platform = domain.FundingPlatform(platform)
	f.Status = domain.FundingStatus(status)
	return &f, nil
}
