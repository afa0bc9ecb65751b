package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Классы ошибок, видимых клиенту. Хендлеры отображают их в статусы
// через errors.Is; всё остальное — 500 с обезличенным сообщением.
var (
	ErrValidation = errors.New("некорректные данные")
	ErrDuplicate  = errors.New("статья с таким url уже существует")
	ErrNotFound   = errors.New("не найдено")
)

// Коды SQLSTATE, которые сервисы отображают в свои ошибки.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
