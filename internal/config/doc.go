// Package config loads csvview's optional YAML configuration from
// ~/.config/csvview/config.yaml (or a path given on the command line) and
// layers it over the built-in defaults. The configuration is read-only;
// csvview never writes it back.
package config
