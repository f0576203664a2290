package engine

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

// Subject is the scoring input. At least one of Name or Phone is set by
// the time a subject reaches the engine.
type Subject struct {
	Name     *string
	Phone    *string
	IDNumber *string
}

// Result is the raw model output, before persistence concerns.
type Result struct {
	ScoreValue              int
	ProbabilityOfDefault    float64
	RiskCategory            domain.RiskCategory
	MaxRecommendedAmount    int64
	RecommendedTermMonths   int
	RecommendedInterestRate float64
	Components              domain.ScoreComponents
	ExplanationText         string
	ModelVersion            string
	Confidence              float64
}

//go:generate mockery --name Engine --output ../../mocks
type Engine interface {
	Score(ctx context.Context, subject *Subject) (*Result, error)
}

const simulatedModelVersion = "v1.0-demo"

// SimulatedEngine produces demo scores until the real model is wired in.
type SimulatedEngine struct{}

func NewSimulatedEngine() *SimulatedEngine {
	return &SimulatedEngine{}
}

func (e *SimulatedEngine) Score(_ context.Context, _ *Subject) (*Result, error) {
	score := rand.IntN(600) + 300 // 300-899
	pd := math.Max(0, math.Min(1, 1-float64(score)/1000))

	risk := RiskCategoryForScore(score)

	maxAmount := int64(score) * 5000 // FCFA
	term := 3
	switch {
	case score >= 600:
		term = 12
	case score >= 400:
		term = 6
	}
	rate := math.Max(5, 35-float64(score)/30)

	return &Result{
		ScoreValue:              score,
		ProbabilityOfDefault:    math.Round(pd*10000) / 10000,
		RiskCategory:            risk,
		MaxRecommendedAmount:    maxAmount,
		RecommendedTermMonths:   term,
		RecommendedInterestRate: math.Round(rate*100) / 100,
		Components: domain.ScoreComponents{
			"pagerank_score":   math.Round(rand.Float64()*100) / 100,
			"behavioral_score": math.Round(rand.Float64()*100) / 100,
			"temporal_score":   math.Round(rand.Float64()*100) / 100,
			"stability_score":  math.Round(rand.Float64()*100) / 100,
			"network_score":    math.Round(rand.Float64()*100) / 100,
		},
		ExplanationText: fmt.Sprintf(
			"Score de %d/1000. Risque %s. Montant max recommandé: %s FCFA sur %d mois à %.1f%%.",
			score, risk, formatAmount(maxAmount), term, rate,
		),
		ModelVersion: simulatedModelVersion,
		Confidence:   0.85,
	}, nil
}

// RiskCategoryForScore maps a score value to its risk category. The
// category decreases monotonically as the score increases.
func RiskCategoryForScore(score int) domain.RiskCategory {
	switch {
	case score >= 800:
		return domain.RiskVeryLow
	case score >= 650:
		return domain.RiskLow
	case score >= 450:
		return domain.RiskMedium
	case score >= 300:
		return domain.RiskHigh
	default:
		return domain.RiskVeryHigh
	}
}

// formatAmount renders an FCFA amount with space-separated thousands
func formatAmount(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}
	return string(out)
}
