package skills

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Python", "python"},
		{"  Machine Learning ", "machine-learning"},
		{"REST API", "rest-api"},
		{"", ""},
		{"   ", ""},
		{"ci-cd", "ci-cd"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeAllDedupes(t *testing.T) {
	got := NormalizeAll([]string{"Python", "python", "PYTHON", "SQL", ""})
	want := []string{"python", "sql"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeAllCap(t *testing.T) {
	raw := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		raw = append(raw, string(rune('a'+i%26))+string(rune('0'+i/26)))
	}
	if got := NormalizeAll(raw); len(got) > MaxSkills {
		t.Errorf("got %d skills, cap is %d", len(got), MaxSkills)
	}
}

func TestFoldMatching(t *testing.T) {
	set := FoldSet([]string{"ci-cd", "machine-learning", "rest_api"})
	for _, s := range []string{"CI-CD", "cicd", "ci_cd", "machinelearning", "REST-API"} {
		if !Contains(set, s) {
			t.Errorf("Contains(%q) = false, want true", s)
		}
	}
	if Contains(set, "python") {
		t.Error("Contains(python) = true, want false")
	}
}
