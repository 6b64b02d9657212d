package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/giftbar/ledger/internal/domain"
)

// convertErr преобразует ошибку pgx к стандартному виду слоя репозитория.
// Добавляет форматированное сообщение контекста и тип бизнес-ошибки.
// Особенности:
//   - pgx.ErrNoRows превращается в domain.ErrRecordNotFound.
//   - Нарушение уникального ключа - в domain.ErrDuplicateKey.
//   - Нарушение CHECK-ограничения (например, balance >= 0) - в
//     domain.ConsistencyError: такие ошибки означают, что проверка перед
//     мутацией не сработала, и глотать их нельзя.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным текстом.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("[repository/%s] %w: %s", msg, domain.ErrDuplicateKey, pgErr.Message)
		case pgerrcode.CheckViolation:
			return fmt.Errorf(
				"[repository/%s] %w",
				msg,
				domain.NewConsistencyError(pgErr.ConstraintName, pgErr.Message),
			)
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, domain.ErrUnknown, err.Error())
}
