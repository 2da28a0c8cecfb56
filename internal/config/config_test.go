package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schoolnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWith("", noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
  file: /tmp/schoolnet.log
metrics:
  addr: "127.0.0.1:9464"
storage:
  s3:
    region: eu-west-3
    endpoint: http://localhost:9000
    path_style: true
solver:
  trace: true
`)
	cfg, err := LoadWith(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/schoolnet.log", cfg.Log.File)
	assert.Equal(t, "127.0.0.1:9464", cfg.Metrics.Addr)
	assert.Equal(t, S3Config{Region: "eu-west-3", Endpoint: "http://localhost:9000", PathStyle: true}, cfg.Storage.S3)
	assert.True(t, cfg.Solver.Trace)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadWith(writeFile(t, ""), noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "log:\n  level: warn\n")
	cfg, err := LoadWith(path, envOf(map[string]string{
		"SCHOOLNET_LOG_LEVEL":     "error",
		"SCHOOLNET_METRICS_ADDR":  ":9090",
		"SCHOOLNET_S3_PATH_STYLE": "true",
		"SCHOOLNET_SOLVER_TRACE":  "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level, "env wins over file")
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
	assert.True(t, cfg.Storage.S3.PathStyle)
	assert.True(t, cfg.Solver.Trace)
}

func TestLoad_Errors(t *testing.T) {
	_, err := LoadWith(filepath.Join(t.TempDir(), "nope.yaml"), noEnv)
	assert.True(t, IsKind(err, KindNotFound))

	_, err = LoadWith(writeFile(t, "log: [\n"), noEnv)
	assert.True(t, IsKind(err, KindInvalidConfig))

	_, err = LoadWith(writeFile(t, "colour: blue\n"), noEnv)
	assert.True(t, IsKind(err, KindInvalidConfig), "unknown keys are rejected")

	_, err = LoadWith(writeFile(t, "log:\n  level: loud\n"), noEnv)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidConfig))
	assert.Contains(t, err.Error(), "log.level")

	_, err = LoadWith("", envOf(map[string]string{"SCHOOLNET_METRICS_ADDR": "nowhere"}))
	assert.ErrorContains(t, err, "metrics.addr")

	_, err = LoadWith("", envOf(map[string]string{"SCHOOLNET_S3_ENDPOINT": "::"}))
	assert.ErrorContains(t, err, "storage.s3.endpoint")

	_, err = LoadWith("", envOf(map[string]string{"SCHOOLNET_SOLVER_TRACE": "maybe"}))
	assert.ErrorContains(t, err, "SCHOOLNET_SOLVER_TRACE")
}

func TestOpError(t *testing.T) {
	var nilErr *OpError
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())

	e := &OpError{Op: "config.load", Kind: KindNotFound, Path: "x.yaml", Err: os.ErrNotExist}
	assert.Equal(t, "config.load: not_found (path=x.yaml): file does not exist", e.Error())
	assert.ErrorIs(t, e, os.ErrNotExist)
	assert.False(t, IsKind(os.ErrNotExist, KindNotFound))
}
