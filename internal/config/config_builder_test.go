package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without a data
// directory is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.NotNil(t, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourcesWin verifies that mergo only fills fields the
// earlier sources left empty.
func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Vaults: Vaults{DefaultSize: 27}},
		&StructuredConfig{App: App{TokenSignKey: "secret"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 27, cfg.Vaults.DefaultSize)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultSaveThrottle, cfg.Vaults.SaveThrottle)
	assert.Equal(t, DefaultPersistWorkers, cfg.Workers.PersistWorkers)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_FILES_DATA_DIR", "/srv/vaults")
	t.Setenv("VAULTS_SAVE_THROTTLE", "750ms")
	t.Setenv("POLICY_BLOCKED_TYPES", "BEDROCK,BARRIER")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "/srv/vaults", b.configs[0].Storage.Files.DataDir)
	assert.Equal(t, 750*time.Millisecond, b.configs[0].Vaults.SaveThrottle)
	assert.Equal(t, []string{"BEDROCK", "BARRIER"}, b.configs[0].Policy.BlockedTypes)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("VAULTS_DEFAULT_SIZE", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-d", "/tmp/data", "-default-size", "18"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/tmp/data", b.configs[0].Storage.Files.DataDir)
	assert.Equal(t, 18, b.configs[0].Vaults.DefaultSize)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Vaults.SaveThrottle = Duration(time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, time.Second, b.configs[1].Vaults.SaveThrottle)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_BuildsValidConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "k"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultVaultSize, cfg.Vaults.DefaultSize)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.NotEmpty(t, cfg.Storage.Files.DataDir)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := Defaults()
		cfg.App.TokenSignKey = "k"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "defaults with key", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing data dir",
			mutate:  func(c *StructuredConfig) { c.Storage.Files.DataDir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "backups without dir",
			mutate:  func(c *StructuredConfig) { c.Storage.Files.BackupDir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "backups disabled without dir",
			mutate: func(c *StructuredConfig) {
				c.Storage.Files.BackupDir = ""
				c.Storage.Files.DisableBackups = true
			},
		},
		{
			name:    "size not multiple of nine",
			mutate:  func(c *StructuredConfig) { c.Vaults.DefaultSize = 10 },
			wantErr: ErrInvalidVaultConfigs,
		},
		{
			name:    "size above six rows",
			mutate:  func(c *StructuredConfig) { c.Vaults.DefaultSize = 63 },
			wantErr: ErrInvalidVaultConfigs,
		},
		{
			name:    "zero throttle",
			mutate:  func(c *StructuredConfig) { c.Vaults.SaveThrottle = 0 },
			wantErr: ErrInvalidVaultConfigs,
		},
		{
			name:    "no workers",
			mutate:  func(c *StructuredConfig) { c.Workers.PersistWorkers = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "http without sign key",
			mutate:  func(c *StructuredConfig) { c.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "no http, no sign key",
			mutate: func(c *StructuredConfig) {
				c.App.TokenSignKey = ""
				c.Server.HTTPAddress = ""
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig(t *testing.T) {
	cfg := newClientConfig(Defaults())
	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)

	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}
