package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	cfg := map[string]string{
		"PORT":        "9090",
		"BAD_INT":     "nine",
		"STRICT_AUTH": "true",
		"EMPTY":       "",
		"SWEEP":       "15m",
		"SWEEP_SECS":  "30",
		"ORIGINS":     " https://a.dev , ,https://b.dev",
	}

	assert.Equal(t, "9090", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(cfg, "EMPTY", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))

	assert.Equal(t, 9090, GetInt(cfg, "PORT", 1))
	assert.Equal(t, 1, GetInt(cfg, "BAD_INT", 1))
	assert.Equal(t, 1, GetInt(cfg, "MISSING", 1))

	assert.True(t, GetBool(cfg, "STRICT_AUTH", false))
	assert.False(t, GetBool(cfg, "MISSING", false))

	assert.Equal(t, 15*time.Minute, GetDuration(cfg, "SWEEP", 0))
	assert.Equal(t, 30*time.Second, GetDuration(cfg, "SWEEP_SECS", 0))
	assert.Equal(t, time.Hour, GetDuration(cfg, "MISSING", time.Hour))

	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, GetList(cfg, "ORIGINS", nil))
	assert.Equal(t, []string{"*"}, GetList(cfg, "MISSING", []string{"*"}))
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_KEY", "a=b")

	cfg := New()

	assert.Equal(t, "a=b", cfg["PORTFOLIO_TEST_KEY"])
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "PORT = 7070\nSTRICT_AUTH = true\nDB_TYPE = \"sqlite\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	values, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "7070", values["PORT"])
	assert.Equal(t, "true", values["STRICT_AUTH"])
	assert.Equal(t, "sqlite", values["DB_TYPE"])
}

func TestLoadFileRejectsTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[db]\nhost = \"x\"\n"), 0o600))

	_, err := LoadFile(path)

	assert.Error(t, err)
}

func TestLoadLayersFileUnderEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("PORT = 7070\nAPI_BASE_PATH = \"/v1\"\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "6060")
	t.Setenv("SSM_PARAMETER_PATH", "")

	cfg, err := Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "6060", cfg["PORT"])
	assert.Equal(t, "/v1", cfg["API_BASE_PATH"])
}

type fakeSSM struct {
	pages [][]types.Parameter
	calls int
	err   error
}

func (f *fakeSSM) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := &ssm.GetParametersByPathOutput{Parameters: f.pages[f.calls]}
	f.calls++
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestLoadSSMParameters(t *testing.T) {
	client := &fakeSSM{pages: [][]types.Parameter{
		{{Name: aws.String("/portfolio/prod/database_url"), Value: aws.String("postgres://db")}},
		{{Name: aws.String("/portfolio/prod/RESEND_API_KEY"), Value: aws.String("re_123")}},
	}}

	values, err := LoadSSMParameters(context.Background(), client, "/portfolio/prod")

	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
	assert.Equal(t, map[string]string{
		"DATABASE_URL":   "postgres://db",
		"RESEND_API_KEY": "re_123",
	}, values)
}

func TestLoadSSMParametersError(t *testing.T) {
	client := &fakeSSM{err: errors.New("access denied")}

	_, err := LoadSSMParameters(context.Background(), client, "/portfolio/prod")

	assert.ErrorContains(t, err, "access denied")
}
