// Package app is the interactive PacketShadow screen.
//
// A single Bubble Tea model owns the interface list, the ordinal input, the
// console and the dialogs. Actions run as tea.Cmd values through an Actions
// implementation (normally *monitor.Controller) and report back with an
// outcome message. While an action is in flight the model is busy and
// ignores further action keys, so external commands never overlap.
//
// # Keys
//
//	↑/↓     move the cursor       enter   select the highlighted interface
//	/       type an ordinal       e       enable monitor mode
//	d       disable monitor mode  k       airmon-ng check kill
//	n       restart NetworkManager (asks first)
//	r       refresh               q       quit
//
// A typed ordinal in range takes precedence over the list selection.
// Refreshing, or any action that ran a command, rediscovers interfaces and
// clears both.
package app
