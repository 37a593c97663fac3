package skills

import (
	"slices"
	"testing"
)

func TestFallbackExtract(t *testing.T) {
	text := `Software Engineer with 3 years experience.
Skills: Python, JavaScript, React, Node.js, MongoDB, Git
Built web applications and REST APIs, deployed with Docker on AWS.`

	got := FallbackExtract(text)

	for _, want := range []string{"python", "javascript", "react", "nodejs", "mongodb", "git", "docker", "aws", "rest-api"} {
		if !slices.Contains(got, want) {
			t.Errorf("missing %q in %v", want, got)
		}
	}
}

func TestFallbackExtractJavaNotJavascript(t *testing.T) {
	got := FallbackExtract("Strong JavaScript developer")
	if slices.Contains(got, "java") {
		t.Errorf("java wrongly detected in %v", got)
	}
	if !slices.Contains(got, "javascript") {
		t.Errorf("javascript not detected in %v", got)
	}

	got = FallbackExtract("Backend services in Java and Kotlin")
	if !slices.Contains(got, "java") {
		t.Errorf("java not detected in %v", got)
	}
}

func TestFallbackExtractListContext(t *testing.T) {
	got := FallbackExtract("Languages: python, typescript")
	if !slices.Contains(got, "python") || !slices.Contains(got, "typescript") {
		t.Errorf("list context extraction failed: %v", got)
	}
}

func TestFallbackExtractEmpty(t *testing.T) {
	if got := FallbackExtract("We enjoy long walks on the beach"); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestFallbackExtractCap(t *testing.T) {
	var text string
	for _, id := range KnownSkills() {
		text += id + " "
	}
	if got := FallbackExtract(text); len(got) > MaxSkills {
		t.Errorf("got %d skills, cap is %d", len(got), MaxSkills)
	}
}
