// File: internal/handler/params.go
package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

var ErrInvalidID = errors.New("invalid id")

// ParseID 解析 path 參數 :id，必須為正整數
func ParseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
