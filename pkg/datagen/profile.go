package datagen

import (
	"fmt"
	"os"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile controls how many randomized examples a property-style test runs
// and which base seed it starts from. Seed 0 means "derive from clock".
type Profile struct {
	Name        string `yaml:"-"`
	MaxExamples int    `yaml:"max_examples"`
	Seed        int64  `yaml:"seed"`
	Verbose     bool   `yaml:"verbose"`
}

// profileEnv selects the active profile, e.g. TESTKIT_PROFILE=ci.
const profileEnv = "TESTKIT_PROFILE"

// builtinProfiles are always available; a YAML file can override or extend
// them.
func builtinProfiles() map[string]Profile {
	return map[string]Profile{
		"default": {Name: "default", MaxExamples: 100},
		"ci":      {Name: "ci", MaxExamples: 200},
		"dev":     {Name: "dev", MaxExamples: 10, Verbose: true},
		"debug":   {Name: "debug", MaxExamples: 10, Seed: 1, Verbose: true},
	}
}

// LoadProfiles returns the builtin profiles overlaid with entries from the
// YAML file at path. A missing file is not an error; a malformed one is.
func LoadProfiles(path string) (map[string]Profile, error) {
	profiles := builtinProfiles()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return profiles, nil
		}
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	var loaded map[string]Profile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file %s: %w", path, err)
	}

	for name, p := range loaded {
		p.Name = name
		if p.MaxExamples <= 0 {
			p.MaxExamples = profiles["default"].MaxExamples
		}
		profiles[name] = p
	}
	return profiles, nil
}

// ActiveProfile resolves the profile named by TESTKIT_PROFILE, falling back
// to "default" when the variable is unset or names an unknown profile.
func ActiveProfile() Profile {
	profiles := builtinProfiles()
	if path := os.Getenv("TESTKIT_PROFILES_PATH"); path != "" {
		if loaded, err := LoadProfiles(path); err == nil {
			profiles = loaded
		}
	}

	name := os.Getenv(profileEnv)
	if name == "" {
		name = "default"
	}
	if p, ok := profiles[name]; ok {
		return p
	}
	return profiles["default"]
}

// Run executes fn MaxExamples times, each with a Generator seeded from the
// profile's base seed plus the example index, so failures are replayable.
func (p Profile) Run(t *testing.T, fn func(t *testing.T, g *Generator)) {
	t.Helper()

	base := p.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	for i := 0; i < p.MaxExamples; i++ {
		seed := base + int64(i)
		if p.Verbose {
			t.Logf("example %d/%d (seed %d)", i+1, p.MaxExamples, seed)
		}
		fn(t, New(seed))
		if t.Failed() {
			t.Fatalf("property failed on example %d (replay with seed %d)", i+1, seed)
		}
	}
}
