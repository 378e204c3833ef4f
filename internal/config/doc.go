// Package config loads, normalizes, and validates OpenRobot client settings.
//
// Settings live in a TOML file, by default
// $XDG_CONFIG_HOME/openrobot/config.toml or ~/.config/openrobot/config.toml,
// holding the API token and the rate-limit knobs NewClient accepts. The CLI
// reads it on startup; the credential package reads its token key when no
// token is passed explicitly.
package config
