// Package monitor dispatches monitor-mode actions to external commands.
//
// A Controller turns each user action into one or more command lines, runs
// them through a command.Runner and returns an Outcome describing what ran,
// what it printed and whether it worked. After any action that executed at
// least one command the interface list is rediscovered, since enabling or
// disabling monitor mode renames interfaces.
//
// # Actions
//
//   - Enable: airmon-ng start <iface>
//   - Disable: airmon-ng stop <iface>, then airmon-ng stop <iface>mon
//   - CheckKill: airmon-ng check kill
//   - RestartNetwork: systemctl, service, then the init script
//   - Refresh: rediscovery only
//
// # Errors
//
//	o := ctrl.Enable(ctx, "wlan0")
//	var missing *monitor.MissingToolError
//	if errors.As(o.Err, &missing) {
//	    // nothing ran
//	}
package monitor
