package repository

import (
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
