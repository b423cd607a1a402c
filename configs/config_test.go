package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	testCases := map[string]string{
		"PORT":                  "9090",
		"ENVIRONMENT":           "test",
		"API_KEY":               "test-key",
		"GENERATOR_SEED":        "42",
		"TESTKIT_PROFILES_PATH": "testdata/profiles.yaml",
	}

	for key, value := range testCases {
		os.Setenv(key, value)
	}

	defer func() {
		for key := range testCases {
			os.Unsetenv(key)
		}
	}()

	cfg := LoadConfig()

	if cfg.Port != "9090" {
		t.Errorf("Expected Port to be '9090', got '%s'", cfg.Port)
	}

	if cfg.Environment != "test" {
		t.Errorf("Expected Environment to be 'test', got '%s'", cfg.Environment)
	}

	if cfg.APIKey != "test-key" {
		t.Errorf("Expected APIKey to be 'test-key', got '%s'", cfg.APIKey)
	}

	if cfg.GeneratorSeed != 42 {
		t.Errorf("Expected GeneratorSeed to be 42, got %d", cfg.GeneratorSeed)
	}

	if cfg.ProfilesPath != "testdata/profiles.yaml" {
		t.Errorf("Expected ProfilesPath to be 'testdata/profiles.yaml', got '%s'", cfg.ProfilesPath)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	vars := []string{
		"PORT", "ENVIRONMENT", "API_KEY",
		"GENERATOR_SEED", "TESTKIT_PROFILES_PATH",
	}

	for _, v := range vars {
		os.Unsetenv(v)
	}

	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Errorf("Expected default Port to be '8080', got '%s'", cfg.Port)
	}

	if cfg.Environment != "development" {
		t.Errorf("Expected default Environment to be 'development', got '%s'", cfg.Environment)
	}

	if cfg.GeneratorSeed != 0 {
		t.Errorf("Expected default GeneratorSeed to be 0, got %d", cfg.GeneratorSeed)
	}
}

func TestLoadConfigInvalidSeed(t *testing.T) {
	os.Setenv("GENERATOR_SEED", "not-a-number")
	defer os.Unsetenv("GENERATOR_SEED")

	cfg := LoadConfig()

	if cfg.GeneratorSeed != 0 {
		t.Errorf("Expected invalid GENERATOR_SEED to fall back to 0, got %d", cfg.GeneratorSeed)
	}
}
