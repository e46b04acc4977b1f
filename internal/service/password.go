// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost 固定為 10 rounds
const PasswordCost = bcrypt.DefaultCost

// ErrPasswordTooLong bcrypt 拒絕超過 72 bytes 的密碼，屬於輸入錯誤
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	bcryptCost                   = bcrypt.Cost
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// IsPasswordHash 判斷字串是否為可解析的 bcrypt 哈希
func IsPasswordHash(s string) bool {
	_, err := bcryptCost([]byte(s))
	return err == nil
}
