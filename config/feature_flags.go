package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// FeatureFlags manages behaviour toggles of the record keeper.
type FeatureFlags struct {
	mu       sync.RWMutex
	features map[string]*Feature
}

// Feature represents a single feature flag.
type Feature struct {
	Name        string
	Description string
	Enabled     bool
}

// Predefined feature flag names.
const (
	// FeatureSharedLedger wires one ledger into both the academic and the
	// student service. When disabled each service keeps its own ledger.
	FeatureSharedLedger = "ledger.shared"

	// FeatureStrictBinding rejects evaluations for subjects outside the term
	// or for students not enrolled in it.
	FeatureStrictBinding = "records.strict_binding"

	// FeatureAssignmentEvents publishes accepted teacher assignments too.
	FeatureAssignmentEvents = "teacher.assignment_events"
)

// LoadFeatureFlags loads feature flags from environment variables.
func LoadFeatureFlags() *FeatureFlags {
	ff := &FeatureFlags{features: make(map[string]*Feature)}
	ff.initializeDefaults()
	ff.loadFromEnvironment()
	return ff
}

func (ff *FeatureFlags) initializeDefaults() {
	ff.features[FeatureSharedLedger] = &Feature{
		Name:        FeatureSharedLedger,
		Description: "Academic and student services share one record ledger",
		Enabled:     true,
	}
	ff.features[FeatureStrictBinding] = &Feature{
		Name:        FeatureStrictBinding,
		Description: "Reject records whose subject or student is not bound to the term",
		Enabled:     false,
	}
	ff.features[FeatureAssignmentEvents] = &Feature{
		Name:        FeatureAssignmentEvents,
		Description: "Publish an event for every accepted teacher assignment",
		Enabled:     false,
	}
}

// loadFromEnvironment applies overrides.
// Example: FEATURE_RECORDS_STRICT_BINDING=true
func (ff *FeatureFlags) loadFromEnvironment() {
	for name, feature := range ff.features {
		val := os.Getenv(featureNameToEnvKey(name))
		if val == "" {
			continue
		}
		if b, err := strconv.ParseBool(val); err == nil {
			feature.Enabled = b
		}
	}
}

// featureNameToEnvKey converts feature name to environment variable key.
// "ledger.shared" -> "FEATURE_LEDGER_SHARED"
func featureNameToEnvKey(name string) string {
	key := strings.ToUpper(name)
	key = strings.ReplaceAll(key, ".", "_")
	return "FEATURE_" + key
}

// IsEnabled reports whether a feature is on. Unknown features are off.
func (ff *FeatureFlags) IsEnabled(featureName string) bool {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	f, ok := ff.features[featureName]
	return ok && f.Enabled
}

// EnableFeature turns a feature on.
func (ff *FeatureFlags) EnableFeature(featureName string) error {
	return ff.set(featureName, true)
}

// DisableFeature turns a feature off.
func (ff *FeatureFlags) DisableFeature(featureName string) error {
	return ff.set(featureName, false)
}

func (ff *FeatureFlags) set(featureName string, enabled bool) error {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	f, ok := ff.features[featureName]
	if !ok {
		return ErrFeatureNotFound
	}
	f.Enabled = enabled
	return nil
}

// GetAllFeatures returns copies of all features sorted by name.
func (ff *FeatureFlags) GetAllFeatures() []Feature {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	result := make([]Feature, 0, len(ff.features))
	for _, v := range ff.features {
		result = append(result, *v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// --- Convenience methods for common checks ---

// SharedLedger reports whether FeatureSharedLedger is enabled.
func (ff *FeatureFlags) SharedLedger() bool { return ff.IsEnabled(FeatureSharedLedger) }

// StrictBinding reports whether FeatureStrictBinding is enabled.
func (ff *FeatureFlags) StrictBinding() bool { return ff.IsEnabled(FeatureStrictBinding) }

// AssignmentEvents reports whether FeatureAssignmentEvents is enabled.
func (ff *FeatureFlags) AssignmentEvents() bool { return ff.IsEnabled(FeatureAssignmentEvents) }

// --- Errors ---

// ErrFeatureNotFound is returned when toggling an unknown feature.
var ErrFeatureNotFound = &FeatureFlagError{Message: "feature not found"}

// FeatureFlagError represents a feature flag error.
type FeatureFlagError struct {
	Message string
}

func (e *FeatureFlagError) Error() string {
	return e.Message
}
