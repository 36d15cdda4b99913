// Package config provides user configuration for PacketShadow.
//
// The configuration is an optional, read-only YAML file. Every field has a
// built-in default, so the file only needs to contain what differs:
//
//	version: 1
//	discovery:
//	  prefixes: [wlan, wl, wifi, ath, wlp, mon]
//	monitor:
//	  tool: airmon-ng
//	  suffix: mon
//	command:
//	  timeout: 30s
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/packetshadow/config.yaml or $HOME/.config/packetshadow/config.yaml
//   - macOS: $HOME/.config/packetshadow/config.yaml
//   - Windows: %LOCALAPPDATA%\packetshadow\config.yaml
//
// PACKETSHADOW_CONFIG overrides the location. A .env file in the working
// directory is read by LoadEnv before anything else, so the PACKETSHADOW_*
// variables can be kept there.
package config
