// file: internals/features/analytics/dropout/service/predictor.go
package service

import "math"

// Features are the per-student signals the scorer looks at. Rates are in
// [0,1]; PendingPayments is a raw count.
type Features struct {
	AbsenceRate     float64 // missed sessions / held sessions
	PaymentLateRate float64 // pending or failed / total payments
	PendingPayments int
	InactiveWeeks   int // weeks since last attended session
}

// Predictor scores dropout risk in [0,1]. Kept as an interface so the linear
// scorer can be swapped for a trained model without touching callers.
type Predictor interface {
	Predict(f Features) float64
}

// LinearPredictor is a fixed-weight logistic scorer. The weights were picked
// by hand from historical intuition, not fitted.
type LinearPredictor struct {
	Bias           float64
	AbsenceWeight  float64
	PaymentWeight  float64
	PendingWeight  float64
	InactiveWeight float64
}

func NewDefaultPredictor() *LinearPredictor {
	return &LinearPredictor{
		Bias:           -2.0,
		AbsenceWeight:  3.0,
		PaymentWeight:  2.0,
		PendingWeight:  0.4,
		InactiveWeight: 0.3,
	}
}

func (p *LinearPredictor) Predict(f Features) float64 {
	z := p.Bias +
		p.AbsenceWeight*clamp01(f.AbsenceRate) +
		p.PaymentWeight*clamp01(f.PaymentLateRate) +
		p.PendingWeight*float64(f.PendingPayments) +
		p.InactiveWeight*float64(f.InactiveWeeks)
	return sigmoid(z)
}

// RiskLabel buckets a score for the dashboard.
func RiskLabel(score float64) string {
	switch {
	case score >= 0.7:
		return "high"
	case score >= 0.4:
		return "medium"
	default:
		return "low"
	}
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
