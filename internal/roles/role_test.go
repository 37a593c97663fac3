package roles

import (
	"math"
	"testing"
)

func TestFindByKeyAndName(t *testing.T) {
	for _, query := range []string{"data-scientist", "Data Scientist", "DATA SCIENTIST"} {
		p, ok := Find(query)
		if !ok {
			t.Fatalf("Find(%q) failed", query)
		}
		if p.Key != "data-scientist" {
			t.Errorf("Find(%q).Key = %q", query, p.Key)
		}
	}
}

func TestFindUnknownRole(t *testing.T) {
	if _, ok := Find("underwater-basket-weaver"); ok {
		t.Error("Find returned a profile for an unknown role")
	}
}

func TestWeightsSumToOne(t *testing.T) {
	if got := WeightCore + WeightOther + WeightSoft; math.Abs(got-1.0) > 1e-9 {
		t.Errorf("category weights sum to %v, want 1.0", got)
	}
}

func TestCatalogShape(t *testing.T) {
	all := All()
	if len(all) != 8 {
		t.Fatalf("catalog has %d roles, want 8", len(all))
	}
	for _, p := range all {
		if len(p.Core) == 0 {
			t.Errorf("%s: no core requirements", p.Key)
		}
		for _, r := range p.TechnicalRequirements() {
			if r.RequiredLevel < 1 || r.RequiredLevel > 3 {
				t.Errorf("%s/%s: required level %d out of range", p.Key, r.SkillID, r.RequiredLevel)
			}
		}
	}
}

func TestRequiredSkillIDsOrder(t *testing.T) {
	p, _ := Find("devops-engineer")
	ids := p.RequiredSkillIDs()
	if ids[0] != "linux" {
		t.Errorf("first required skill = %q, want linux", ids[0])
	}
	if len(ids) != len(p.Core)+len(p.Other) {
		t.Errorf("got %d ids, want %d", len(ids), len(p.Core)+len(p.Other))
	}
}
