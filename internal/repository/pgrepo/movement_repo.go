package pgrepo

import (
	"context"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

const movementColumns = `id, created_at, movement_type, grouping_id,
	purchase_id, funding_id, operation_id, store_payment_id`

// MovementRepository журнал движений средств. Записи только добавляются,
// обновления и удаления не поддерживаются намеренно.
type MovementRepository struct {
	conn uow.DBTX
}

func NewMovementRepository(conn uow.DBTX) *MovementRepository {
	return &MovementRepository{conn: conn}
}

// NextGroupingID выделяет следующий grouping id из последовательности БД.
// Последовательность монотонна и атомарна, поэтому коллизии невозможны даже
// под конкурентной нагрузкой. Вызывается внутри той же транзакции, что и
// запись сгруппированных движений.
func (r *MovementRepository) NextGroupingID(ctx context.Context) (int64, error) {
	var id int64
	err := r.conn.QueryRow(ctx, `SELECT nextval('movement_groupings')`).Scan(&id)
	if err != nil {
		return 0, convertErr(err, "allocating movement grouping id")
	}
	return id, nil
}

// CreateGroup записывает набор движений под одним grouping id одним батчем.
// Матрица тип-ссылка проверяется до первой вставки: запись с недопустимой
// ссылкой означает ошибку в формирующем коде, а не во входных данных.
func (r *MovementRepository) CreateGroup(
	ctx context.Context,
	groupingID int64,
	movements []repoargs.CreateMovement,
) ([]domain.Movement, error) {
	for _, m := range movements {
		candidate := domain.Movement{
			Type:           m.Type,
			GroupingID:     groupingID,
			PurchaseID:     m.PurchaseID,
			FundingID:      m.FundingID,
			OperationID:    m.OperationID,
			StorePaymentID: m.StorePaymentID,
		}
		if vErr := candidate.Validate(); vErr != nil {
			return nil, domain.NewConsistencyError("movement references", vErr.Error())
		}
	}

	created := make([]domain.Movement, 0, len(movements))
	for _, m := range movements {
		row := r.conn.QueryRow(ctx,
			`INSERT INTO movements (movement_type, grouping_id, purchase_id, funding_id, operation_id, store_payment_id)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING `+movementColumns,
			string(m.Type), groupingID, m.PurchaseID, m.FundingID, m.OperationID, m.StorePaymentID,
		)
		movement, err := scanMovement(row)
		if err != nil {
			return nil, convertErr(err, "creating movement of type %s", m.Type)
		}
		created = append(created, *movement)
	}
	return created, nil
}

func (r *MovementRepository) List(
	ctx context.Context,
	filter repoargs.MovementFilter,
) ([]domain.Movement, error) {
	limit := filter.Limit
	if limit == 0 || limit > 1000 {
		limit = 100
	}

	query := `SELECT ` + movementColumns + ` FROM movements`
	args := []any{}
	if filter.Type != nil {
		query += ` WHERE movement_type = $1`
		args = append(args, string(*filter.Type))
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ` + itoa(limit)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "listing movements")
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		movement, scanErr := scanMovement(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning movement")
		}
		movements = append(movements, *movement)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing movements")
	}
	return movements, nil
}

// GetByGroupingID возвращает все записи одной бизнес-транзакции.
func (r *MovementRepository) GetByGroupingID(ctx context.Context, groupingID int64) ([]domain.Movement, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+movementColumns+` FROM movements WHERE grouping_id = $1 ORDER BY id`, groupingID)
	if err != nil {
		return nil, convertErr(err, "getting movements of group %d", groupingID)
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		movement, scanErr := scanMovement(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning movement")
		}
		movements = append(movements, *movement)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting movements of group %d", groupingID)
	}
	return movements, nil
}

func scanMovement(row rowScanner) (*domain.Movement, error) {
	var m domain.Movement
	var movementType string
	err := row.Scan(
		&m.ID, &m.CreatedAt, &movementType, &m.GroupingID,
		&m.PurchaseID, &m.FundingID, &m.OperationID, &m.StorePaymentID,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.Type = domain.MovementType(movementType)
	return &m, nil
}
