package internal

import (
	"strings"
	"testing"
)

func TestJournalConfig_Valid(t *testing.T) {
	cfg := JournalConfig{NoteFolder: "/home/me/notes"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("absolute folder should pass: %v", err)
	}
}

func TestJournalConfig_Missing(t *testing.T) {
	cfg := JournalConfig{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("missing folder should fail")
	}
	if !strings.Contains(err.Error(), "JOURNAL_NOTE_FOLDER") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJournalConfig_Relative(t *testing.T) {
	cfg := JournalConfig{NoteFolder: "notes/journal"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("relative folder should fail")
	}
	if !strings.Contains(err.Error(), "absolute") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFullConfig_JournalValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("default config has no folder and should fail")
	}
	cfg.Journal.NoteFolder = "/tmp/j"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
