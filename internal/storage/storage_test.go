package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean name unchanged",
			input:    "bos_agenda_2025-01-15.pdf",
			expected: "bos_agenda_2025-01-15.pdf",
		},
		{
			name:     "space replaced",
			input:    "Agenda Final.pdf",
			expected: "Agenda_Final.pdf",
		},
		{
			name:     "every unsafe character replaced",
			input:    `a\b/c*d?e:f"g<h>i|j.pdf`,
			expected: "a_b_c_d_e_f_g_h_i_j.pdf",
		},
		{
			name:     "empty name stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.input)
			if got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
			if strings.ContainsAny(got, `\/*?:"<>|`) {
				t.Errorf("sanitized name %q still contains unsafe characters", got)
			}
		})
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dir := filepath.Join(tmpDir, "downloads")
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("downloads directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
	if store.Dir() != dir {
		t.Errorf("Dir() = %q, expected %q", store.Dir(), dir)
	}
}

func TestSaveDocument(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := New(filepath.Join(tmpDir, "downloads"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	data := []byte("%PDF-1.7 test")
	path, err := store.SaveDocument("https://example.org/docs/Agenda Final.pdf", data)
	if err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	if filepath.Base(path) != "Agenda_Final.pdf" {
		t.Errorf("saved filename = %q, expected %q", filepath.Base(path), "Agenda_Final.pdf")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved document: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("saved content = %q, expected %q", got, data)
	}
}

func TestSaveDocument_OverwritesOnCollision(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := New(filepath.Join(tmpDir, "downloads"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := store.SaveDocument("https://example.org/a/agenda.pdf", []byte("first")); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	path, err := store.SaveDocument("https://example.org/b/agenda.pdf", []byte("second"))
	if err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved document: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected later download to overwrite, content = %q", got)
	}
}
