package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFiltersDefaults(t *testing.T) {
	f, err := LoadFilters("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if f.Notaires.TransactionTypes != "VENTE,VNI,VAE" {
		t.Errorf("Unexpected default transaction types %q", f.Notaires.TransactionTypes)
	}
	if len(f.BienICI.PropertyTypes) != 5 {
		t.Errorf("Expected 5 default property types, got %d", len(f.BienICI.PropertyTypes))
	}
	if len(f.Departments) != 0 {
		t.Errorf("Expected no department restriction by default, got %v", f.Departments)
	}
}

func TestLoadFiltersMissingFile(t *testing.T) {
	f, err := LoadFilters(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected missing file to fall back to defaults, got %v", err)
	}
	if f.Notaires.TransactionTypes == "" {
		t.Error("Expected defaults to apply for a missing file")
	}
}

func TestLoadFiltersOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	content := "departments: [\"75\", \"2A\"]\nbienici:\n  property_types: [\"flat\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFilters(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(f.Departments) != 2 || f.Departments[1] != "2A" {
		t.Errorf("Expected departments [75 2A], got %v", f.Departments)
	}
	if len(f.BienICI.PropertyTypes) != 1 || f.BienICI.PropertyTypes[0] != "flat" {
		t.Errorf("Expected property_types [flat], got %v", f.BienICI.PropertyTypes)
	}
	// untouched keys keep their defaults
	if f.Notaires.TransactionTypes != "VENTE,VNI,VAE" {
		t.Errorf("Expected untouched notaires defaults, got %q", f.Notaires.TransactionTypes)
	}
}

func TestLoadFiltersBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("departments: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFilters(path); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}
