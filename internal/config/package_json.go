package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// PackageJSONKey is the package.json field holding themify settings
const PackageJSONKey = "themify"

// ReadPackageJSONConfig returns the "themify" object of dir/package.json,
// or nil when the file or the field is absent
func ReadPackageJSONConfig(dir string) (map[string]any, error) {
	path := filepath.Join(dir, "package.json")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: project package.json
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}

	var pkg map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}

	raw, ok := pkg[PackageJSONKey]
	if !ok {
		return nil, nil
	}
	cfg, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an object", PackageJSONKey)
	}
	return cfg, nil
}
