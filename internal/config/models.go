package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/packetshadow/packetshadow/internal/discovery"
	"github.com/packetshadow/packetshadow/internal/monitor"
)

// Config represents the entire user configuration file.
type Config struct {
	Version   int             `yaml:"version"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Monitor   MonitorConfig   `yaml:"monitor"`
	Network   NetworkConfig   `yaml:"network"`
	Command   CommandConfig   `yaml:"command"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DiscoveryConfig controls how wireless interfaces are enumerated.
type DiscoveryConfig struct {
	Primary  []string `yaml:"primary"`  // Structured device listing (e.g. "iw dev")
	Fallback []string `yaml:"fallback"` // Brief link listing (e.g. "ip -brief link")
	Prefixes []string `yaml:"prefixes"` // Recognized wireless name prefixes for the fallback
}

// MonitorConfig names the monitor-mode tool and its interface suffix.
type MonitorConfig struct {
	Tool   string `yaml:"tool"`
	Suffix string `yaml:"suffix"`
}

// NetworkConfig lists the service restart candidates, tried in order.
type NetworkConfig struct {
	Restart [][]string `yaml:"restart"`
}

// CommandConfig controls external command execution.
type CommandConfig struct {
	Timeout time.Duration `yaml:"timeout"` // 0 disables the timeout
}

// LoggingConfig controls zap output. Environment variables take precedence.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the built-in configuration. The stock commands come from
// the discovery and monitor packages.
func Default() *Config {
	d := discovery.DefaultConfig()
	m := monitor.DefaultConfig()
	return &Config{
		Version: 1,
		Discovery: DiscoveryConfig{
			Primary:  d.Primary,
			Fallback: d.Fallback,
			Prefixes: d.Prefixes,
		},
		Monitor: MonitorConfig{
			Tool:   m.Tool,
			Suffix: m.Suffix,
		},
		Network: NetworkConfig{
			Restart: m.Restart,
		},
	}
}

// Validate checks that every command line is usable.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}
	if len(c.Discovery.Primary) == 0 {
		return fmt.Errorf("discovery.primary must not be empty")
	}
	if len(c.Discovery.Fallback) == 0 {
		return fmt.Errorf("discovery.fallback must not be empty")
	}
	for _, p := range c.Discovery.Prefixes {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("discovery.prefixes must not contain empty entries")
		}
	}
	if strings.TrimSpace(c.Monitor.Tool) == "" {
		return fmt.Errorf("monitor.tool must not be empty")
	}
	if len(c.Network.Restart) == 0 {
		return fmt.Errorf("network.restart must list at least one command")
	}
	for i, argv := range c.Network.Restart {
		if len(argv) == 0 {
			return fmt.Errorf("network.restart[%d] is empty", i)
		}
	}
	if c.Command.Timeout < 0 {
		return fmt.Errorf("command.timeout must not be negative")
	}
	return nil
}
