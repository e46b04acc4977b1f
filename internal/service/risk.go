// File: internal/service/risk.go
package service

import (
	"sync"

	"construction-erp/internal/model"
	"construction-erp/internal/worker"
)

// 風險等級
const (
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

const (
	// 預算使用率超過進度 overrunMargin 個百分點即判定超支
	overrunMargin  = 20.0
	overrunPenalty = 50
	// budget <= 0 時無法計算使用率，直接視為最高風險
	MaxRiskScore = 100
)

// RiskAssessment 單一專案的風險評估結果，不落庫
type RiskAssessment struct {
	ProjectID int
	Budget    float64
	Spent     float64
	Progress  float64
	Score     int
	Level     string
}

// EvaluateRisk 依預算使用率與進度計算風險分數與等級
func EvaluateRisk(p model.Project) RiskAssessment {
	a := RiskAssessment{
		ProjectID: p.ID,
		Budget:    p.Budget,
		Spent:     p.Spent,
		Progress:  p.Progress,
	}

	if p.Budget <= 0 {
		a.Score = MaxRiskScore
	} else if BudgetUsedPercent(p) > p.Progress+overrunMargin {
		a.Score += overrunPenalty
	}

	a.Level = ClassifyRisk(a.Score)
	return a
}

// BudgetUsedPercent 回傳 spent / budget * 100；budget <= 0 時回傳 0
func BudgetUsedPercent(p model.Project) float64 {
	if p.Budget <= 0 {
		return 0
	}
	return p.Spent / p.Budget * 100
}

// ClassifyRisk 分數轉等級。分數 0 也歸為 Medium，不會產生 Low。
func ClassifyRisk(score int) string {
	switch {
	case score > 60:
		return RiskCritical
	case score > 30:
		return RiskHigh
	default:
		return RiskMedium
	}
}

// EvaluatePortfolio 透過 worker pool 平行評估多個專案，結果順序與輸入一致
func EvaluatePortfolio(pool worker.Pool, projects []model.Project) []RiskAssessment {
	out := make([]RiskAssessment, len(projects))
	var wg sync.WaitGroup
	wg.Add(len(projects))
	for i := range projects {
		pool.Submit(func() {
			defer wg.Done()
			out[i] = EvaluateRisk(projects[i])
		})
	}
	wg.Wait()
	return out
}
