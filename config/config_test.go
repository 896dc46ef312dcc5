package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "academic-records", cfg.App.Name)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 70.0, cfg.Grading.PassingGrade)
	assert.Equal(t, "Perla", cfg.Session.FirstName)
	assert.Equal(t, "Yudith", cfg.Session.MiddleName)
	assert.Equal(t, 38, cfg.Session.Age)
	assert.Equal(t, "528131658748", cfg.Session.MobilePhone)
	assert.False(t, cfg.EventBus.Async)
	assert.Equal(t, 4, cfg.EventBus.Workers)
	assert.True(t, cfg.EventBus.Audit)

	base, _ := cfg.Language().Base()
	spanish, _ := language.Spanish.Base()
	assert.Equal(t, spanish, base)

	assert.True(t, cfg.Features.SharedLedger())
	assert.False(t, cfg.Features.StrictBinding())
	assert.False(t, cfg.Features.AssignmentEvents())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("GRADING_PASSING_GRADE", "60")
	t.Setenv("GRADING_LOCALE", "en-US")
	t.Setenv("SESSION_STUDENT_FIRST_NAME", "Ana")
	t.Setenv("EVENTBUS_ASYNC", "true")
	t.Setenv("FEATURE_RECORDS_STRICT_BINDING", "true")
	t.Setenv("FEATURE_LEDGER_SHARED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 60.0, cfg.Grading.PassingGrade)
	assert.Equal(t, language.MustParse("en-US"), cfg.Language())
	assert.Equal(t, "Ana", cfg.Session.FirstName)
	assert.True(t, cfg.EventBus.Async)
	assert.True(t, cfg.Features.StrictBinding())
	assert.False(t, cfg.Features.SharedLedger())
}

func TestLoad_DotenvFile(t *testing.T) {
	const key = "SESSION_STUDENT_ADDRESS"
	_, preset := os.LookupEnv(key)
	if preset {
		t.Skipf("%s already set in the environment", key)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=\"Saltillo, Coah.\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Saltillo, Coah.", cfg.Session.Address)
}

func TestLoad_MissingDotenvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"passing grade", "GRADING_PASSING_GRADE", "101"},
		{"zero passing grade", "GRADING_PASSING_GRADE", "0"},
		{"negative passing grade", "GRADING_PASSING_GRADE", "-5"},
		{"locale", "GRADING_LOCALE", "not a tag"},
		{"log format", "LOG_FORMAT", "xml"},
		{"workers", "EVENTBUS_WORKERS", "0"},
		{"age", "SESSION_STUDENT_AGE", "-4"},
		{"first name", "SESSION_STUDENT_FIRST_NAME", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestFeatureFlags_Toggle(t *testing.T) {
	ff := LoadFeatureFlags()

	require.NoError(t, ff.EnableFeature(FeatureAssignmentEvents))
	assert.True(t, ff.AssignmentEvents())
	require.NoError(t, ff.DisableFeature(FeatureSharedLedger))
	assert.False(t, ff.SharedLedger())

	assert.ErrorIs(t, ff.EnableFeature("no.such.feature"), ErrFeatureNotFound)
	assert.False(t, ff.IsEnabled("no.such.feature"))

	all := ff.GetAllFeatures()
	require.Len(t, all, 3)
	assert.Equal(t, FeatureSharedLedger, all[0].Name)
	assert.Equal(t, FeatureStrictBinding, all[1].Name)
	assert.Equal(t, FeatureAssignmentEvents, all[2].Name)
}

func TestFeatureNameToEnvKey(t *testing.T) {
	assert.Equal(t, "FEATURE_LEDGER_SHARED", featureNameToEnvKey(FeatureSharedLedger))
	assert.Equal(t, "FEATURE_RECORDS_STRICT_BINDING", featureNameToEnvKey(FeatureStrictBinding))
}
