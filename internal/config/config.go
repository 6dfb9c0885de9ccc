// Package config resolves the process configuration from the
// environment. The CI step contract passes everything as environment
// variables; the resolved struct is handed to the pipeline explicitly
// so nothing below the CLI reads ambient state.
package config

import "github.com/spf13/viper"

// DefaultFormat is used when OUTPUT_FORMAT is unset.
const DefaultFormat = "json"

// Config is the full invocation configuration.
type Config struct {
	ToParse      string // raw text to scan for a fenced ENV block
	OutputFormat string // output format selector
	OutputFile   string // CI key/value result file path, empty to skip
	GitHubToken  string // API token for the pr command, may be empty
}

// Load resolves the configuration from the environment.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("OUTPUT_FORMAT", DefaultFormat)

	return &Config{
		ToParse:      v.GetString("TO_PARSE"),
		OutputFormat: v.GetString("OUTPUT_FORMAT"),
		OutputFile:   v.GetString("GITHUB_OUTPUT"),
		GitHubToken:  v.GetString("GITHUB_TOKEN"),
	}
}
