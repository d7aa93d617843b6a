package locations

import "testing"

func TestDistrictsCatalog(t *testing.T) {
	ds := Districts()
	if len(ds) != 38 {
		t.Fatalf("expected 38 districts, got %d", len(ds))
	}
	for _, d := range ds {
		if d.StateID != TamilNaduID {
			t.Fatalf("district %s has wrong state %s", d.ID, d.StateID)
		}
	}
}

func TestDistrictID(t *testing.T) {
	if got := DistrictID("The Nilgiris"); got != "the-nilgiris" {
		t.Fatalf("unexpected id %s", got)
	}
}

func TestDistrictByID(t *testing.T) {
	d, ok := DistrictByID("salem")
	if !ok || d.Name != "Salem" {
		t.Fatalf("expected to find Salem, got %+v ok=%v", d, ok)
	}
	if _, ok := DistrictByID("atlantis"); ok {
		t.Fatalf("expected missing district to be absent")
	}
}

func TestVillagesIn(t *testing.T) {
	vs := VillagesIn("salem")
	if len(vs) != 6 {
		t.Fatalf("expected 6 salem villages, got %d", len(vs))
	}
	if vs[0].ID != "v_yercaud" {
		t.Fatalf("expected catalog order preserved, got %s first", vs[0].ID)
	}
	if got := VillagesIn("madurai"); got != nil {
		t.Fatalf("expected no villages for madurai, got %d", len(got))
	}
}

func TestVillageByID(t *testing.T) {
	v, ok := VillageByID("v_ooty")
	if !ok || v.DistrictID != "the-nilgiris" {
		t.Fatalf("unexpected village %+v ok=%v", v, ok)
	}
}
