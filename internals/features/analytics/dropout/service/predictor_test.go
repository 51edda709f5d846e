// file: internals/features/analytics/dropout/service/predictor_test.go
package service

import "testing"

func TestPredictRange(t *testing.T) {
	p := NewDefaultPredictor()

	cases := []Features{
		{},
		{AbsenceRate: 1, PaymentLateRate: 1, PendingPayments: 10, InactiveWeeks: 52},
		{AbsenceRate: 0.5, PaymentLateRate: 0.2, PendingPayments: 1, InactiveWeeks: 2},
		{AbsenceRate: -3, PaymentLateRate: 7}, // out-of-range rates get clamped
	}
	for _, f := range cases {
		score := p.Predict(f)
		if score < 0 || score > 1 {
			t.Errorf("Predict(%+v) = %v, want in [0,1]", f, score)
		}
	}
}

func TestPredictMonotonic(t *testing.T) {
	p := NewDefaultPredictor()

	low := p.Predict(Features{AbsenceRate: 0.1})
	high := p.Predict(Features{AbsenceRate: 0.9})
	if high <= low {
		t.Errorf("higher absence should raise risk: low=%v high=%v", low, high)
	}

	few := p.Predict(Features{PendingPayments: 0})
	many := p.Predict(Features{PendingPayments: 5})
	if many <= few {
		t.Errorf("more pending payments should raise risk: few=%v many=%v", few, many)
	}
}

func TestPredictHealthyStudentIsLowRisk(t *testing.T) {
	p := NewDefaultPredictor()
	score := p.Predict(Features{AbsenceRate: 0, PaymentLateRate: 0})
	if score >= 0.4 {
		t.Errorf("clean record scored %v, want < 0.4", score)
	}
	if got := RiskLabel(score); got != "low" {
		t.Errorf("RiskLabel(%v) = %q, want low", score, got)
	}
}

func TestRiskLabel(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.0, "low"},
		{0.39, "low"},
		{0.4, "medium"},
		{0.69, "medium"},
		{0.7, "high"},
		{1.0, "high"},
	}
	for _, tc := range cases {
		if got := RiskLabel(tc.score); got != tc.want {
			t.Errorf("RiskLabel(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
