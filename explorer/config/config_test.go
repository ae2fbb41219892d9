package config

import (
	"bikeshare/domain/entities/filter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadShippedConfig(t *testing.T) {
	explorerConfig, err := LoadConfig("config.yaml")
	require.NoError(t, err)
	require.NoError(t, explorerConfig.Validate())

	assert.Equal(t, DefaultConfig().CityFiles, explorerConfig.CityFiles)
	assert.Equal(t, 5, explorerConfig.ChunkSize)
	assert.False(t, explorerConfig.ReportPublisher.Enabled)
	assert.Equal(t, "bikeshare-reports-topic", explorerConfig.ReportPublisher.ExchangeConfig.Name)
	assert.Equal(t, "report", explorerConfig.ReportPublisher.PublishingConfig.RoutingKey)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	t.Setenv(dataDirEnvVarName, "")
	path := writeConfig(t, "data_dir: /datasets\nchunk_size: 10\ncity_files:\n  washington: dc.csv\n")

	explorerConfig, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/datasets", explorerConfig.DataDir)
	assert.Equal(t, 10, explorerConfig.ChunkSize)
	assert.Equal(t, "dc.csv", explorerConfig.CityFiles["washington"])
	assert.Equal(t, "chicago.csv", explorerConfig.CityFiles["chicago"])
	assert.Equal(t, HighlightAuto, explorerConfig.Highlight)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv(logLevelEnvVarName, "debug")
	t.Setenv(dataDirEnvVarName, "/data")
	t.Setenv(rabbitURLEnvVarName, "amqp://localhost:5672/")

	explorerConfig, err := LoadConfig(writeConfig(t, "log_level: info\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", explorerConfig.LogLevel)
	assert.Equal(t, "/data", explorerConfig.DataDir)
	assert.Equal(t, "amqp://localhost:5672/", explorerConfig.ReportPublisher.URL)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "chunk_size: [\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		modify      func(c *ExplorerConfig)
		expectedErr error
	}{
		{
			name:        "missing city",
			modify:      func(c *ExplorerConfig) { delete(c.CityFiles, "chicago") },
			expectedErr: ErrMissingCityFile,
		},
		{
			name:        "unknown city",
			modify:      func(c *ExplorerConfig) { c.CityFiles["boston"] = "boston.csv" },
			expectedErr: ErrUnknownCity,
		},
		{
			name:        "chunk size",
			modify:      func(c *ExplorerConfig) { c.ChunkSize = 0 },
			expectedErr: ErrInvalidChunkSize,
		},
		{
			name:        "highlight",
			modify:      func(c *ExplorerConfig) { c.Highlight = "sometimes" },
			expectedErr: ErrInvalidHighlight,
		},
		{
			name:        "publisher without exchange",
			modify:      func(c *ExplorerConfig) { c.ReportPublisher.Enabled = true },
			expectedErr: ErrMissingExchange,
		},
	}

	require.NoError(t, DefaultConfig().Validate())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			explorerConfig := DefaultConfig()
			tc.modify(explorerConfig)
			assert.ErrorIs(t, explorerConfig.Validate(), tc.expectedErr)
		})
	}
}

func TestGetCityFiles(t *testing.T) {
	cityFiles := DefaultConfig().GetCityFiles()

	assert.Equal(t, "new_york_city.csv", cityFiles[filter.NewYorkCity])
	assert.Len(t, cityFiles, 3)
}

func TestShouldHighlight(t *testing.T) {
	explorerConfig := DefaultConfig()
	assert.True(t, explorerConfig.ShouldHighlight(true))
	assert.False(t, explorerConfig.ShouldHighlight(false))

	explorerConfig.Highlight = HighlightAlways
	assert.True(t, explorerConfig.ShouldHighlight(false))

	explorerConfig.Highlight = HighlightNever
	assert.False(t, explorerConfig.ShouldHighlight(true))
}
