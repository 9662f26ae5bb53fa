package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/valpere/sfltran/internal/config"
	"github.com/valpere/sfltran/internal/core"
	"github.com/valpere/sfltran/internal/sfl"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "", "analyze", "The CEO announced the merger.")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	var got sfl.FeatureBundle
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.ProcessType != sfl.ProcessVerbal {
		t.Errorf("expected verbal, got %q", got.ProcessType)
	}
	if got.Register.Field != sfl.FieldBusiness {
		t.Errorf("expected business field, got %q", got.Register.Field)
	}
}

func TestAnalyzeCommand_Stdin(t *testing.T) {
	out, err := run(t, "Did you think about it?\n", "analyze")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	var got sfl.FeatureBundle
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Mood != sfl.MoodInterrogative {
		t.Errorf("expected interrogative, got %q", got.Mood)
	}
}

func TestTranslateCommand_Stub(t *testing.T) {
	out, err := run(t, "", "translate", "--services", "stub", "-s", "en", "-t", "fr", "Hello")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if out != "Translation: [Translated to fr]: Hello\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestTranslateCommand_UnknownRegister(t *testing.T) {
	_, err := run(t, "", "translate", "--services", "stub", "--register", "pirate", "-s", "en", "-t", "fr", "Hello")
	if err == nil {
		t.Error("expected error for unknown register")
	}
	// reset for later tests sharing the global flag set
	rootCmd.PersistentFlags().Set("register", "")
}

func TestAgentCommand(t *testing.T) {
	out, err := run(t, "Hello\n\nGoodbye\n", "agent", "--services", "stub", "-s", "en", "-t", "fr")
	if err != nil {
		t.Fatalf("agent failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 result lines, got %d: %q", len(lines), out)
	}

	var first core.TranslationResult
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON %q: %v", lines[0], err)
	}
	if first.TranslatedText != "[Translated to fr]: Hello" {
		t.Errorf("unexpected translation %q", first.TranslatedText)
	}
}

func TestBuildServices(t *testing.T) {
	cfg := &config.Config{Services: []string{"stub", "bogus", "ollama", "mymemory", "google"}}

	services, err := buildServices(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, s := range services {
		names = append(names, s.Name())
	}
	if strings.Join(names, ",") != "stub,ollama,mymemory,google" {
		t.Errorf("unexpected services %v", names)
	}
}

func TestBuildServices_NoneValid(t *testing.T) {
	if _, err := buildServices(&config.Config{Services: []string{"bogus"}}); err == nil {
		t.Error("expected error when no services are valid")
	}
}

func TestMaxAttemptsFlag(t *testing.T) {
	if _, err := run(t, "", "translate", "--services", "stub", "--max-attempts", "3", "-s", "en", "-t", "fr", "Hello"); err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if cfg.MaxAttempts != 3 {
		t.Errorf("expected max attempts 3, got %d", cfg.MaxAttempts)
	}
	rootCmd.PersistentFlags().Set("max-attempts", "1")
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Chdir restore: %v", err)
		}
	})
}
