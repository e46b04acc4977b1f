// File: internal/model/project.go
package model

import "time"

// Project 工程專案，budget / spent 為金額，progress 為完成百分比
type Project struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Budget    float64   `db:"budget" json:"budget"`
	Spent     float64   `db:"spent" json:"spent"`
	Progress  float64   `db:"progress" json:"progress"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
