// File: internal/store/errors.go
package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrEmailExists = errors.New("email already exists")
)

// uniqueViolation 為 PostgreSQL SQLSTATE 23505
const uniqueViolation = "23505"

// translate 將 pgx 錯誤轉為 store 的哨兵錯誤，其餘原樣回傳
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrEmailExists
	}
	return err
}
