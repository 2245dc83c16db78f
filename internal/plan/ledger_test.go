package plan

import "testing"

func TestProteinSourceGramsMonotonic(t *testing.T) {
	prev := -1.0
	for w := 20.0; w <= 150; w += 0.5 {
		got := ProteinSourceGrams(w)
		if got < prev {
			t.Fatalf("grams decreased at weight %v: %v -> %v", w, prev, got)
		}
		if got < 0 {
			t.Fatalf("negative grams at weight %v", w)
		}
		prev = got
	}

	if ProteinSourceGrams(20) != 0 {
		t.Errorf("below 25kg the quantity must floor at 0")
	}
	if ProteinSourceGrams(105) != 80 {
		t.Errorf("ProteinSourceGrams(105) = %v, want 80", ProteinSourceGrams(105))
	}
}

func TestEggCountStepAt80(t *testing.T) {
	if EggCount(79.9) != 2 {
		t.Errorf("79.9kg should get 2 eggs")
	}
	if EggCount(80) != 2 {
		t.Errorf("exactly 80kg should still get 2 eggs")
	}
	if EggCount(80.1) != 3 {
		t.Errorf("80.1kg should get 3 eggs")
	}
}

func TestComputeFixedLedgerAxelDefaults(t *testing.T) {
	ledger := ComputeFixedLedger(PersonAxel, DefaultProfile(PersonAxel))

	// Static: 495/32 common + 550/15 pancakes + 110/25 morning whey.
	// Dynamic: 80g protein source (264 kcal / 40g), 3 eggs (240 kcal / 18g).
	if !almostEqual(ledger.Kcal, 1659) {
		t.Errorf("fixed kcal = %v, want 1659", ledger.Kcal)
	}
	if !almostEqual(ledger.ProteinG, 130) {
		t.Errorf("fixed protein = %v, want 130", ledger.ProteinG)
	}
	if ledger.ProteinSourceGrams != 80 || ledger.EggCount != 3 {
		t.Errorf("dynamic quantities: %v g, %d eggs", ledger.ProteinSourceGrams, ledger.EggCount)
	}
}

func TestComputeFixedLedgerPriscaOverrides(t *testing.T) {
	ledger := ComputeFixedLedger(PersonPrisca, DefaultProfile(PersonPrisca))

	// Prisca's morning whey overrides to zero and her pancakes are lighter.
	if !almostEqual(ledger.Kcal, 1169.5) {
		t.Errorf("fixed kcal = %v, want 1169.5", ledger.Kcal)
	}
	if !almostEqual(ledger.ProteinG, 76.5) {
		t.Errorf("fixed protein = %v, want 76.5", ledger.ProteinG)
	}
	if ledger.ProteinSourceGrams != 45 || ledger.EggCount != 2 {
		t.Errorf("dynamic quantities: %v g, %d eggs", ledger.ProteinSourceGrams, ledger.EggCount)
	}
}

func TestComputeFixedLedgerOptions(t *testing.T) {
	p := DefaultProfile(PersonAxel)
	base := ComputeFixedLedger(PersonAxel, p)

	p.OptGalettes = true
	p.OptCheeseG = 50
	withOpts := ComputeFixedLedger(PersonAxel, p)

	wantKcal := base.Kcal + 334 + 50*4
	wantProt := base.ProteinG + 13.4 + 50*0.25
	if !almostEqual(withOpts.Kcal, wantKcal) {
		t.Errorf("kcal with options = %v, want %v", withOpts.Kcal, wantKcal)
	}
	if !almostEqual(withOpts.ProteinG, wantProt) {
		t.Errorf("protein with options = %v, want %v", withOpts.ProteinG, wantProt)
	}
}
