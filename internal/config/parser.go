package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	authformerrors "github.com/tessier-labs/authform/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseScreenConfig loads a screen configuration file from disk, validates
// it, and returns the resulting model.
func ParseScreenConfig(path string) (*ScreenConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, authformerrors.NewParseError(path, 0, err)
	}

	var cfg ScreenConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, authformerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateScreenConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
