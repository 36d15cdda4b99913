// Package discovery enumerates the wireless network interfaces on the host.
//
// Enumeration runs a primary command and, when that fails or finds nothing,
// a fallback command:
//
//	iw dev             # primary: "Interface <name>" lines
//	ip -brief link     # fallback: first token filtered by name prefix
//
// The result is an ordered list of names with no repeats. An empty list is a
// valid answer ("no adapters found"), never an error. Results are not cached:
// interface names change when monitor mode is toggled, so callers rescan
// after every action.
//
//	scanner := discovery.NewScanner(discovery.DefaultConfig(), runner, logger)
//	names := scanner.Discover(ctx)
package discovery
