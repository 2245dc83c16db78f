package plan

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateExpenditureMale(t *testing.T) {
	exp := EstimateExpenditure(DefaultProfile(PersonAxel))

	// 10*105 + 6.25*183 - 5*27 + 5
	if !almostEqual(exp.BMR, 2063.75) {
		t.Errorf("BMR = %v, want 2063.75", exp.BMR)
	}
	if !almostEqual(exp.Sedentary, 2063.75*1.2) {
		t.Errorf("sedentary = %v, want %v", exp.Sedentary, 2063.75*1.2)
	}

	// 105kg * (190/60)h * 8 MET, averaged over 7 days
	wantSport := 105 * (190.0 / 60) * 8 / 7
	if !almostEqual(exp.SportDaily, wantSport) {
		t.Errorf("sport daily = %v, want %v", exp.SportDaily, wantSport)
	}
	if !almostEqual(exp.TotalDaily, exp.Sedentary+exp.SportDaily) {
		t.Errorf("total daily must be sedentary + sport average")
	}
}

func TestEstimateExpenditureFemale(t *testing.T) {
	exp := EstimateExpenditure(DefaultProfile(PersonPrisca))

	// 10*70 + 6.25*165 - 5*25 - 161
	if !almostEqual(exp.BMR, 1445.25) {
		t.Errorf("BMR = %v, want 1445.25", exp.BMR)
	}
}

func TestEstimateExpenditureNoSport(t *testing.T) {
	p := DefaultProfile(PersonAxel)
	p.SportMinWeek = 0

	exp := EstimateExpenditure(p)
	if !almostEqual(exp.TotalDaily, exp.Sedentary) {
		t.Errorf("with no sport, total daily %v should equal sedentary %v", exp.TotalDaily, exp.Sedentary)
	}
}
