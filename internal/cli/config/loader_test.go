package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultSchemaFile, cfg.SchemaFile)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	require.NotNil(t, cfg.Target)
	assert.Equal(t, "duckdb", cfg.Target.Type)
	assert.Equal(t, DefaultTargetPath, cfg.Target.Path)
	assert.Contains(t, cfg.Check.AllowUppercase, "ROI")
	assert.Contains(t, cfg.Check.AllowUppercase, "CTR")
	assert.Equal(t, int64(42), cfg.Generate.Seed)
	assert.Equal(t, 1200, cfg.Generate.Audiences)
	assert.Empty(t, ConfigFileUsed())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
schema_file: schemas/main.sql
output: json
target:
  type: sqlite
  path: test.db
check:
  allow_uppercase: [ROI]
generate:
  seed: 7
  audiences: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mediaforge.yaml"), []byte(content), 0644))
	chdir(t, dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "schemas/main.sql", cfg.SchemaFile)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "sqlite", cfg.Target.Type)
	assert.Equal(t, "test.db", cfg.Target.Path)
	assert.Equal(t, []string{"ROI"}, cfg.Check.AllowUppercase)
	assert.Equal(t, int64(7), cfg.Generate.Seed)
	assert.Equal(t, 10, cfg.Generate.Audiences)
	assert.Equal(t, "mediaforge.yaml", ConfigFileUsed())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mediaforge.yaml"),
		[]byte("data_dir: from_file\n"), 0644))
	chdir(t, dir)

	t.Setenv("MEDIAFORGE_DATA_DIR", "from_env")
	t.Setenv("MEDIAFORGE_TARGET__TYPE", "sqlite")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Target.Type)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MEDIAFORGE_DATA_DIR", "from_env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data-dir", "", "")
	flags.String("schema", "", "")
	flags.String("target", "", "")
	require.NoError(t, flags.Parse([]string{
		"--data-dir", "from_flag",
		"--schema", "other.sql",
		"--target", "sqlite",
	}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "from_flag", cfg.DataDir)
	assert.Equal(t, "other.sql", cfg.SchemaFile)
	assert.Equal(t, "sqlite", cfg.Target.Type)
}

func TestLoadUnchangedFlagsIgnored(t *testing.T) {
	chdir(t, t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data-dir", "flag_default", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
}

func TestLoadInvalidTargetType(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mediaforge.yaml"),
		[]byte("target:\n  type: mysql\n"), 0644))
	chdir(t, dir)

	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid target configuration")
	assert.Contains(t, err.Error(), "mysql")
}

func TestExpandTargetEnvVars(t *testing.T) {
	t.Setenv("MF_TEST_PASSWORD", "s3cret")

	tgt := &TargetConfig{
		Password: "${MF_TEST_PASSWORD}",
		Host:     "${MF_TEST_MISSING}",
	}
	expandTargetEnvVars(tgt)

	assert.Equal(t, "s3cret", tgt.Password)
	assert.Equal(t, "${MF_TEST_MISSING}", tgt.Host, "unset vars stay literal")
}

func TestAdapterConfig(t *testing.T) {
	tgt := &TargetConfig{
		Type: "postgres", Host: "db.local", Port: 5432,
		Database: "media", User: "loader", Password: "pw",
	}
	ac := tgt.AdapterConfig()

	assert.Equal(t, "postgres", ac.Type)
	assert.Equal(t, "db.local", ac.Host)
	assert.Equal(t, 5432, ac.Port)
	assert.Equal(t, "media", ac.Database)
	assert.Equal(t, "loader", ac.Username)
	assert.Equal(t, "pw", ac.Password)
}
