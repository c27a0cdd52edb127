package config

import (
	"os"
	"testing"
)

func TestGetenv(t *testing.T) {
	os.Unsetenv("TEST_GETENV")
	if got := getenv("TEST_GETENV", "default"); got != "default" {
		t.Errorf("Expected 'default', got %q", got)
	}

	os.Setenv("TEST_GETENV", "value")
	if got := getenv("TEST_GETENV", "default"); got != "value" {
		t.Errorf("Expected 'value', got %q", got)
	}
	os.Unsetenv("TEST_GETENV")
}

func TestGetenvInt(t *testing.T) {
	os.Unsetenv("TEST_GETENV_INT")
	if got := getenvInt("TEST_GETENV_INT", 42); got != 42 {
		t.Errorf("Expected 42, got %d", got)
	}

	os.Setenv("TEST_GETENV_INT", "100")
	if got := getenvInt("TEST_GETENV_INT", 42); got != 100 {
		t.Errorf("Expected 100, got %d", got)
	}

	os.Setenv("TEST_GETENV_INT", "not-an-int")
	if got := getenvInt("TEST_GETENV_INT", 42); got != 42 {
		t.Errorf("Expected default 42 for invalid value, got %d", got)
	}
	os.Unsetenv("TEST_GETENV_INT")
}

func TestGetenvBool(t *testing.T) {
	os.Unsetenv("TEST_GETENV_BOOL")
	if got := getenvBool("TEST_GETENV_BOOL", true); got != true {
		t.Errorf("Expected true, got %v", got)
	}

	os.Setenv("TEST_GETENV_BOOL", "false")
	if got := getenvBool("TEST_GETENV_BOOL", true); got != false {
		t.Errorf("Expected false, got %v", got)
	}

	os.Setenv("TEST_GETENV_BOOL", "maybe")
	if got := getenvBool("TEST_GETENV_BOOL", true); got != true {
		t.Errorf("Expected default true for invalid value, got %v", got)
	}
	os.Unsetenv("TEST_GETENV_BOOL")
}
