package bank_test

import (
	"os"
	"path/filepath"
	"testing"

	"SafetyQuizBot/internal/bank"
)

const sampleBank = `
[[sections]]
name = "General"

[[sections.questions]]
text = "Q1"

[[sections.questions.options]]
label = "a"
correct = true

[[sections.questions.options]]
label = "b"

[[sections.questions]]
text = "Q2"
image = "https://example.com/q2.png"

[[sections.questions.options]]
label = "a"

[[sections.questions.options]]
label = "b"
correct = true

[[sections.questions.options]]
label = "c"
correct = true
`

func writeBank(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bank.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	b, err := bank.Load(writeBank(t, sampleBank))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sections := b.Sections()
	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	sec, ok := b.Section("General")
	if !ok {
		t.Fatal("section lookup failed")
	}
	if len(sec.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(sec.Questions))
	}
	q2 := sec.Questions[1]
	if q2.Image != "https://example.com/q2.png" {
		t.Fatalf("image = %q", q2.Image)
	}
	if got := q2.CorrectSet().Sorted(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("correct set = %v, want [1 2]", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"no correct option": `
[[sections]]
name = "S"
[[sections.questions]]
text = "Q"
[[sections.questions.options]]
label = "a"
[[sections.questions.options]]
label = "b"
`,
		"single option": `
[[sections]]
name = "S"
[[sections.questions]]
text = "Q"
[[sections.questions.options]]
label = "a"
correct = true
`,
		"empty text": `
[[sections]]
name = "S"
[[sections.questions]]
text = ""
[[sections.questions.options]]
label = "a"
correct = true
[[sections.questions.options]]
label = "b"
`,
		"missing name": `
[[sections]]
name = ""
[[sections.questions]]
text = "Q"
[[sections.questions.options]]
label = "a"
correct = true
[[sections.questions.options]]
label = "b"
`,
	}
	for name, content := range cases {
		if _, err := bank.Load(writeBank(t, content)); err == nil {
			t.Errorf("%s: expected load error", name)
		}
	}
}

func TestLoadEmptyDir(t *testing.T) {
	if _, err := bank.Load(t.TempDir()); err == nil {
		t.Fatal("expected error for empty directory")
	}
}

func TestLoadOrDefaultFallback(t *testing.T) {
	b := bank.LoadOrDefault("")
	if len(b.Sections()) == 0 {
		t.Fatal("default bank empty")
	}
	b = bank.LoadOrDefault(filepath.Join(t.TempDir(), "missing"))
	if len(b.Sections()) == 0 {
		t.Fatal("fallback bank empty")
	}
}

// Every built-in question must have at least one correct option and at
// least two options.
func TestDefaultFixtureInvariant(t *testing.T) {
	for _, sec := range bank.Default().Sections() {
		if len(sec.Questions) == 0 {
			t.Errorf("section %q has no questions", sec.Name)
		}
		for i, q := range sec.Questions {
			if len(q.Options) < 2 {
				t.Errorf("%q question[%d] has %d options", sec.Name, i, len(q.Options))
			}
			if len(q.CorrectSet()) < 1 {
				t.Errorf("%q question[%d] has no correct option", sec.Name, i)
			}
		}
	}
}
