package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempConfig(t, "config.json", string(data))
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier config is
// not overridden by a later one, while unset fields are filled in.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{StorageHost: "https://first.example"}},
		&StructuredConfig{Adapter: Adapter{StorageHost: "https://second.example", UserAgent: "ua"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://first.example", cfg.Adapter.StorageHost)
	assert.Equal(t, "ua", cfg.Adapter.UserAgent)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_DEVICE_DESC", "desktop-macos")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_DB_DSN", "/tmp/state.db")
	t.Setenv("LOG_LEVEL", "debug")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "desktop-macos", b.configs[0].App.DeviceDesc)
	assert.Equal(t, 45*time.Second, b.configs[0].Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/state.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, "debug", b.configs[0].Log.Level)
}

// TestWithEnv_BadDuration verifies that an unparsable duration is reported.
func TestWithEnv_BadDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()
	assert.Error(t, b.err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_LoadsFile verifies that a .env file in the working directory
// seeds the environment.
func TestWithDotEnv_LoadsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ADAPTER_USER_AGENT=from-dotenv\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("ADAPTER_USER_AGENT", "")
	require.NoError(t, os.Unsetenv("ADAPTER_USER_AGENT"))

	b := newConfigBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].Adapter.UserAgent)
}

// TestWithDotEnv_MissingFileIsFine verifies that no .env file is not an error.
func TestWithDotEnv_MissingFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ParsesAndKeepsCommand verifies that global flags are consumed
// and the command with its own flags is left over.
func TestWithFlags_ParsesAndKeepsCommand(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{
		"-d", "/tmp/x.db", "-request-timeout", "5s", "-storage-host", "https://storage.example",
		"ls", "-r", "/Books",
	})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/tmp/x.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, 5*time.Second, b.configs[0].Adapter.RequestTimeout)
	assert.Equal(t, "https://storage.example", b.configs[0].Adapter.StorageHost)
	assert.Equal(t, []string{"ls", "-r", "/Books"}, b.rest)
}

// TestWithFlags_UnknownFlag verifies that an unknown global flag is an error.
func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-bogus"})
	assert.Error(t, b.err)
}

// TestWithFlags_Repeatable verifies that flags can be parsed more than once
// in the same process.
func TestWithFlags_Repeatable(t *testing.T) {
	for i := 0; i < 2; i++ {
		b := newConfigBuilder().withFlags([]string{"-log-level", "warn"})
		require.NoError(t, b.err)
		assert.Equal(t, "warn", b.configs[0].Log.Level)
	}
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config names a file.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_JSON verifies that a JSON file is parsed and appended.
func TestWithFile_JSON(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.Adapter.StorageHost = "https://json.example"
	payload.Adapter.RequestTimeout = Duration(20 * time.Second)
	payload.Storage.DB.DSN = "/json/state.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://json.example", b.configs[1].Adapter.StorageHost)
	assert.Equal(t, 20*time.Second, b.configs[1].Adapter.RequestTimeout)
	assert.Equal(t, "/json/state.db", b.configs[1].Storage.DB.DSN)
}

// TestWithFile_YAML verifies that .yaml files are decoded as YAML.
func TestWithFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "rmcloud.yaml", `
app:
  device_desc: desktop-windows
adapter:
  request_timeout: 1m
  user_agent: yaml-agent
log:
  level: warn
`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	got := b.configs[1]
	assert.Equal(t, "desktop-windows", got.App.DeviceDesc)
	assert.Equal(t, time.Minute, got.Adapter.RequestTimeout)
	assert.Equal(t, "yaml-agent", got.Adapter.UserAgent)
	assert.Equal(t, "warn", got.Log.Level)
}

// TestWithFile_SetsError_WhenFileMissing verifies that a missing file is
// reported via b.err.
func TestWithFile_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_SetsError_WhenMalformed verifies that undecodable files are
// reported via b.err.
func TestWithFile_SetsError_WhenMalformed(t *testing.T) {
	path := writeTempConfig(t, "bad.json", "{not json")

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withFile()

	assert.Error(t, b.err)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

// TestGetClientConfig_Precedence verifies env > flags > file > defaults.
func TestGetClientConfig_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeTempConfig(t, "rmcloud.yml", `
adapter:
  storage_host: https://file.example
  user_agent: file-agent
  request_timeout: 10s
storage:
  db:
    dsn: /file/state.db
`)
	t.Setenv("ADAPTER_STORAGE_HOST", "https://env.example")

	cfg, rest, err := GetClientConfig([]string{
		"-c", path, "-storage-host", "https://flag.example", "-user-agent", "flag-agent", "mkdir", "/A",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"mkdir", "/A"}, rest)
	assert.Equal(t, "https://env.example", cfg.Adapter.StorageHost)
	assert.Equal(t, "flag-agent", cfg.Adapter.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/file/state.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultTokenURL, cfg.Adapter.TokenURL)
	assert.Equal(t, DefaultDeviceDesc, cfg.App.DeviceDesc)
}

// TestGetClientConfig_Defaults verifies that an empty environment yields a
// valid config.
func TestGetClientConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, rest, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDiscoveryURL, cfg.Adapter.DiscoveryURL)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
}
