package discovery

import (
	"context"
	"regexp"
	"strings"

	"github.com/packetshadow/packetshadow/internal/command"
	"go.uber.org/zap"
)

// interfacePattern matches the "Interface <name>" lines of `iw dev`.
var interfacePattern = regexp.MustCompile(`^\s*Interface\s+(\S+)`)

// Source names which enumeration produced a scan result.
type Source string

const (
	SourceNone     Source = "none"
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Config holds the enumeration commands and the fallback name filter.
type Config struct {
	// Primary lists devices in the structured per-line format of `iw dev`.
	Primary []string
	// Fallback lists links briefly, one per line, name first (`ip -brief link`).
	Fallback []string
	// Prefixes are the wireless name prefixes accepted from the fallback.
	Prefixes []string
}

// DefaultConfig returns the stock iw/ip configuration.
func DefaultConfig() Config {
	return Config{
		Primary:  []string{"iw", "dev"},
		Fallback: []string{"ip", "-brief", "link"},
		Prefixes: []string{"wlan", "wl", "wifi", "ath", "wlp"},
	}
}

// Scanner enumerates wireless interfaces through external commands.
type Scanner struct {
	config Config
	runner command.Runner
	logger *zap.Logger
}

// NewScanner creates a scanner that runs its commands through runner.
func NewScanner(config Config, runner command.Runner, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		config: config,
		runner: runner,
		logger: logger,
	}
}

// Discover returns the wireless interface names in display order.
// An empty result means no adapters were found; it is not an error.
func (s *Scanner) Discover(ctx context.Context) []string {
	names, _ := s.Scan(ctx)
	return names
}

// Scan is Discover that also reports which enumeration produced the names.
func (s *Scanner) Scan(ctx context.Context) ([]string, Source) {
	res := s.runner.Run(ctx, s.config.Primary)
	if res.Success() && res.Stdout != "" {
		if names := ParseDeviceList(res.Stdout); len(names) > 0 {
			s.logger.Debug("interfaces discovered",
				zap.String("source", string(SourcePrimary)),
				zap.Strings("interfaces", names),
			)
			return names, SourcePrimary
		}
	}

	s.logger.Debug("primary enumeration yielded nothing, using fallback",
		zap.Strings("primary", s.config.Primary),
		zap.Int("exit_code", res.ExitCode),
	)

	res = s.runner.Run(ctx, s.config.Fallback)
	if res.Success() && res.Stdout != "" {
		if names := ParseLinkList(res.Stdout, s.config.Prefixes); len(names) > 0 {
			s.logger.Debug("interfaces discovered",
				zap.String("source", string(SourceFallback)),
				zap.Strings("interfaces", names),
			)
			return names, SourceFallback
		}
	}

	s.logger.Info("no wireless adapters found")
	return []string{}, SourceNone
}

// ParseDeviceList extracts interface names from `iw dev` style output,
// keeping first-seen order and dropping repeats.
func ParseDeviceList(output string) []string {
	names := make([]string, 0)
	seen := make(map[string]struct{})
	for _, line := range strings.Split(output, "\n") {
		m := interfacePattern.FindStringSubmatch(line)
		if len(m) < 2 {
			continue
		}
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

// ParseLinkList extracts the first token of each `ip -brief link` line that
// starts with one of prefixes. Matching is case-sensitive.
func ParseLinkList(output string, prefixes []string) []string {
	names := make([]string, 0)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if hasAnyPrefix(fields[0], prefixes) {
			names = append(names, fields[0])
		}
	}
	return names
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
