package courses

import (
	"context"
	"strings"
	"testing"
)

func TestParseFullCourseString(t *testing.T) {
	info := Parse("Python for Everybody - Coursera (University of Michigan)")
	if info.Title != "Python for Everybody" {
		t.Errorf("Title = %q", info.Title)
	}
	if info.Platform != "Coursera" {
		t.Errorf("Platform = %q", info.Platform)
	}
	if info.Duration != "4-6 weeks" {
		t.Errorf("Duration = %q", info.Duration)
	}
	if info.URL == "" {
		t.Error("URL is empty")
	}
}

func TestParseWithoutPlatform(t *testing.T) {
	info := Parse("Some Obscure Course")
	if info.Platform != "Online" {
		t.Errorf("Platform = %q, want Online", info.Platform)
	}
	if info.Duration != "2-4 hours" {
		t.Errorf("Duration = %q, want default", info.Duration)
	}
}

func TestParseEmptyAndNA(t *testing.T) {
	for _, in := range []string{"", "N/A"} {
		info := Parse(in)
		if info.Title != "N/A" || info.Platform != "N/A" || info.Duration != "N/A" {
			t.Errorf("Parse(%q) = %+v", in, info)
		}
	}
}

func TestCourseTypeOverridesPlatformDuration(t *testing.T) {
	info := Parse("Google Cybersecurity - Coursera (professional certificate)")
	if info.Duration != "6-8 weeks" {
		t.Errorf("Duration = %q, want certificate override", info.Duration)
	}
}

func TestURLForKnownPlatformRule(t *testing.T) {
	got := URLFor("Complete Python Bootcamp", "Udemy")
	if got != "https://www.udemy.com/course/complete-python-bootcamp/" {
		t.Errorf("URLFor = %q", got)
	}
}

func TestURLForPlatformSearchFallback(t *testing.T) {
	got := URLFor("Quantum Basket Weaving", "Coursera")
	if !strings.HasPrefix(got, "https://www.coursera.org/search?query=") {
		t.Errorf("URLFor = %q, want coursera search", got)
	}
}

func TestURLForGenericFallback(t *testing.T) {
	got := URLFor("Docker Fundamentals", "Some Bootcamp Site")
	if got != "https://docs.docker.com/get-started/" {
		t.Errorf("URLFor = %q", got)
	}
}

func TestURLForSearchDefault(t *testing.T) {
	got := URLFor("Underwater Basket Weaving", "Unknown")
	if !strings.HasPrefix(got, "https://www.google.com/search?q=") {
		t.Errorf("URLFor = %q, want search fallback", got)
	}
}

func TestCandidatesCapAndCopy(t *testing.T) {
	list := Candidates("python", 2)
	if len(list) != 2 {
		t.Fatalf("got %d candidates, want 2", len(list))
	}
	list[0] = "mutated"
	again := Candidates("python", 2)
	if again[0] == "mutated" {
		t.Error("Candidates returned shared backing storage")
	}
}

func TestCandidatesUnknownSkill(t *testing.T) {
	if got := Candidates("underwater-basket-weaving", 6); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestCompact(t *testing.T) {
	got := Compact("Python for Everybody - Coursera (University of Michigan)")
	if got != "Python for Everybody - Coursera" {
		t.Errorf("Compact = %q", got)
	}
	if Compact("Plain Course - Udemy") != "Plain Course - Udemy" {
		t.Error("Compact altered a string without parenthetical")
	}
}

func TestLookupPreservesSkillsAndBounds(t *testing.T) {
	skillIDs := []string{"python", "sql", "no-such-skill", "docker"}
	got := Lookup(context.Background(), skillIDs, 2)
	if len(got) != len(skillIDs) {
		t.Fatalf("got %d entries, want %d", len(got), len(skillIDs))
	}
	if got["no-such-skill"] != nil {
		t.Errorf("unknown skill got candidates: %v", got["no-such-skill"])
	}
	if len(got["python"]) == 0 || len(got["python"]) > MaxPerSkill {
		t.Errorf("python candidates = %d", len(got["python"]))
	}
}
