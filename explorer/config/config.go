package config

import (
	"bikeshare/communication"
	"bikeshare/domain/entities/filter"
	"bikeshare/loader"
	"bikeshare/pager"
	"bikeshare/utils"
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

const (
	DefaultConfigFilepath = "./explorer/config/config.yaml"
	logLevelEnvVarName    = "LOG_LEVEL"
	dataDirEnvVarName     = "BIKESHARE_DATA_DIR"
	rabbitURLEnvVarName   = "RABBIT_URL"

	HighlightAuto   = "auto"
	HighlightAlways = "always"
	HighlightNever  = "never"
)

// ExplorerConfig configuration of the bikeshare explorer
// + DataDir: directory that contains the trips files
// + CityFiles: trips file name of each city
// + TimeLayout: layout of the Start Time column
// + ChunkSize: amount of rows displayed at a time by the raw data pager
// + Highlight: auto, always or never. Auto highlights the elapsed times only if the output is a terminal
// + LogLevel: logrus level
// + ReportPublisher: settings to publish the statistics of each session in RabbitMQ
type ExplorerConfig struct {
	DataDir         string                              `yaml:"data_dir"`
	CityFiles       map[string]string                   `yaml:"city_files"`
	TimeLayout      string                              `yaml:"time_layout"`
	ChunkSize       int                                 `yaml:"chunk_size"`
	Highlight       string                              `yaml:"highlight"`
	LogLevel        string                              `yaml:"log_level"`
	ReportPublisher communication.ReportPublisherConfig `yaml:"report_publisher"`
}

// DefaultConfig returns the configuration used when no config file is found
func DefaultConfig() *ExplorerConfig {
	return &ExplorerConfig{
		DataDir: ".",
		CityFiles: map[string]string{
			string(filter.Chicago):     "chicago.csv",
			string(filter.NewYorkCity): "new_york_city.csv",
			string(filter.Washington):  "washington.csv",
		},
		TimeLayout: loader.DefaultTimeLayout,
		ChunkSize:  pager.DefaultChunkSize,
		Highlight:  HighlightAuto,
		LogLevel:   "warn",
	}
}

// LoadConfig reads the config file at configFilepath on top of the default configuration and applies
// the env vars overrides. If configFilepath is empty the default config file is used, and it is fine if it does not exist.
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	explorerConfig := DefaultConfig()

	optional := configFilepath == ""
	if optional {
		configFilepath = DefaultConfigFilepath
	}

	configFile, err := utils.GetConfigFile(configFilepath)
	switch {
	case err == nil:
		err = yaml.Unmarshal(configFile, explorerConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing explorer config file: %s", err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
		// built-in defaults
	default:
		return nil, err
	}

	if logLevel := os.Getenv(logLevelEnvVarName); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}

	if dataDir := os.Getenv(dataDirEnvVarName); dataDir != "" {
		explorerConfig.DataDir = dataDir
	}

	if rabbitURL := os.Getenv(rabbitURLEnvVarName); rabbitURL != "" {
		explorerConfig.ReportPublisher.URL = rabbitURL
	}

	return explorerConfig, nil
}

// Validate checks that every known city has a trips file and that the settings are usable
func (c *ExplorerConfig) Validate() error {
	for _, city := range filter.Cities() {
		if c.CityFiles[string(city)] == "" {
			return fmt.Errorf("%w: %s", ErrMissingCityFile, city)
		}
	}

	for city := range c.CityFiles {
		if _, err := filter.ParseCity(city); err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownCity, city)
		}
	}

	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidChunkSize, c.ChunkSize)
	}

	switch c.Highlight {
	case HighlightAuto, HighlightAlways, HighlightNever:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidHighlight, c.Highlight)
	}

	if c.ReportPublisher.Enabled && c.ReportPublisher.PublishingConfig.Exchange == "" {
		return ErrMissingExchange
	}

	return nil
}

// GetCityFiles returns the trips file name of each city
func (c *ExplorerConfig) GetCityFiles() map[filter.City]string {
	cityFiles := make(map[filter.City]string, len(c.CityFiles))
	for city, filename := range c.CityFiles {
		cityFiles[filter.City(city)] = filename
	}
	return cityFiles
}

// ShouldHighlight returns true if the elapsed times must be emphasized
func (c *ExplorerConfig) ShouldHighlight(isTerminal bool) bool {
	switch c.Highlight {
	case HighlightAlways:
		return true
	case HighlightNever:
		return false
	default:
		return isTerminal
	}
}
