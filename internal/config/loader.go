package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/csvview"
	configFileName = "config.yaml"
)

// Load reads the configuration at path, or the user config file when path
// is empty, and layers it over Default. A missing user config is not an
// error; a missing explicit path is.
func Load(path string) (Config, error) {
	config := Default()

	explicit := path != ""
	if !explicit {
		p, err := getUserConfigPath()
		if err != nil {
			// no home directory, run with defaults
			return config, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return config, nil
	}

	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return Default(), fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(config, fileConfig), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs lays overlay over base; only fields set in overlay win.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.RowsPerPage > 0 {
		merged.RowsPerPage = overlay.RowsPerPage
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	mergeString(&merged.Colors.String, overlay.Colors.String)
	mergeString(&merged.Colors.Int, overlay.Colors.Int)
	mergeString(&merged.Colors.Float, overlay.Colors.Float)
	mergeString(&merged.Colors.Bool, overlay.Colors.Bool)
	mergeString(&merged.Colors.Empty, overlay.Colors.Empty)

	h, o := &merged.Hotkeys, overlay.Hotkeys
	mergeKeys(&h.Up, o.Up)
	mergeKeys(&h.Down, o.Down)
	mergeKeys(&h.PrevPage, o.PrevPage)
	mergeKeys(&h.NextPage, o.NextPage)
	mergeKeys(&h.Load, o.Load)
	mergeKeys(&h.Save, o.Save)
	mergeKeys(&h.Search, o.Search)
	mergeKeys(&h.ClearSearch, o.ClearSearch)
	mergeKeys(&h.GoTo, o.GoTo)
	mergeKeys(&h.Columns, o.Columns)
	mergeKeys(&h.ShowAll, o.ShowAll)
	mergeKeys(&h.HideAll, o.HideAll)
	mergeKeys(&h.Toggle, o.Toggle)
	mergeKeys(&h.Filter, o.Filter)
	mergeKeys(&h.Edit, o.Edit)
	mergeKeys(&h.Copy, o.Copy)
	mergeKeys(&h.Logs, o.Logs)
	mergeKeys(&h.Help, o.Help)
	mergeKeys(&h.Quit, o.Quit)
	mergeKeys(&h.Confirm, o.Confirm)
	mergeKeys(&h.Cancel, o.Cancel)
	mergeKeys(&h.Tab, o.Tab)

	return merged
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeKeys(dst *[]string, v []string) {
	if len(v) > 0 {
		*dst = append([]string(nil), v...)
	}
}
