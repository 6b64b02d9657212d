package pgrepo

import (
	"context"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/pkg/uow"
)

const storeColumns = `id, created_at, updated_at, name, commission_percentage`

// StoreRepository хранит магазины-участники и считает их неоплаченные остатки.
type StoreRepository struct {
	conn uow.DBTX
}

func NewStoreRepository(conn uow.DBTX) *StoreRepository {
	return &StoreRepository{conn: conn}
}

func (r *StoreRepository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
	store, err := scanStore(row)
	if err != nil {
		return nil, convertErr(err, "getting store %d", id)
	}
	return store, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]domain.Store, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+storeColumns+` FROM stores ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing stores")
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		store, scanErr := scanStore(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning store")
		}
		stores = append(stores, *store)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing stores")
	}
	return stores, nil
}

// Balances считает задолженность платформы перед магазинами: сумма доставленных
// и еще не привязанных к выплате покупок за вычетом комиссии платформы.
// storeID == nil возвращает остатки всех магазинов, включая нулевые.
func (r *StoreRepository) Balances(ctx context.Context, storeID *int64) ([]domain.StoreBalance, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT s.id, s.name,
		        COALESCE(SUM(p.amount * (1 - s.commission_percentage))
		                 FILTER (WHERE p.status = $1 AND p.store_payment_id IS NULL), 0)
		 FROM stores s
		 LEFT JOIN purchases p ON p.store_id = s.id
		 WHERE $2::bigint IS NULL OR s.id = $2
		 GROUP BY s.id, s.name
		 ORDER BY s.id`,
		string(domain.PurchaseStatusDelivered), storeID,
	)
	if err != nil {
		return nil, convertErr(err, "aggregating store balances")
	}
	defer rows.Close()

	var balances []domain.StoreBalance
	for rows.Next() {
		var b domain.StoreBalance
		if scanErr := rows.Scan(&b.StoreID, &b.StoreName, &b.Balance); scanErr != nil {
			return nil, convertErr(scanErr, "scanning store balance")
		}
		b.Balance = domain.RoundMoney(b.Balance)
		balances = append(balances, b)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "aggregating store balances")
	}
	return balances, nil
}

func scanStore(row rowScanner) (*domain.Store, error) {
	var s domain.Store
	err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.Name, &s.CommissionPercentage)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &s, nil
}
