package monitor

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/packetshadow/packetshadow/internal/command"
)

// Action identifies a user-triggered operation.
type Action string

const (
	ActionEnable    Action = "enable"
	ActionDisable   Action = "disable"
	ActionCheckKill Action = "check-kill"
	ActionRestart   Action = "restart-network"
	ActionRefresh   Action = "refresh"
)

// Config holds the monitor-mode tool and service restart commands.
type Config struct {
	// Tool is the monitor-mode binary. Default: "airmon-ng"
	Tool string
	// Suffix is appended to an interface name by the tool when it creates a
	// monitor interface. Default: "mon"
	Suffix string
	// Restart lists the network service restart commands, tried in order.
	Restart [][]string
}

// DefaultConfig returns a Config with the stock airmon-ng and
// NetworkManager commands.
func DefaultConfig() Config {
	return Config{
		Tool:   "airmon-ng",
		Suffix: "mon",
		Restart: [][]string{
			{"systemctl", "restart", "NetworkManager"},
			{"service", "network-manager", "restart"},
			{"/etc/init.d/networking", "restart"},
		},
	}
}

// Discoverer enumerates wireless interfaces.
type Discoverer interface {
	Discover(ctx context.Context) []string
}

// Outcome is everything one action produced.
type Outcome struct {
	// ID correlates log entries for this action
	ID string
	// Action is the operation that was requested
	Action Action
	// Title describes the action for display, e.g. "Enable monitor on wlan0"
	Title string
	// Attempts holds every command run, in order
	Attempts []command.Result
	// Log holds console lines: what ran and what it printed
	Log []string
	// Success is true when the action's success policy was met
	Success bool
	// Err classifies the failure when Success is false
	Err error
	// Interfaces is the rediscovered list; valid when Refreshed is true
	Interfaces []string
	Refreshed  bool
}

// Ran reports whether at least one external command was executed.
func (o *Outcome) Ran() bool {
	return len(o.Attempts) > 0
}

// Controller maps actions to external commands and runs them.
type Controller struct {
	config     Config
	runner     command.Runner
	tools      command.ToolChecker
	discoverer Discoverer
	logger     *zap.Logger
}

// NewController creates a controller.
func NewController(config Config, runner command.Runner, tools command.ToolChecker, discoverer Discoverer, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		config:     config,
		runner:     runner,
		tools:      tools,
		discoverer: discoverer,
		logger:     logger,
	}
}

// Tool returns the monitor-mode binary name.
func (c *Controller) Tool() string {
	return c.config.Tool
}

// Enable starts monitor mode on iface. The result is reported regardless of
// the exit status.
func (c *Controller) Enable(ctx context.Context, iface string) *Outcome {
	o := c.begin(ActionEnable, "Enable monitor on "+iface)
	if !c.requireTool(o) {
		return o
	}

	res := c.run(ctx, o, "Running", []string{c.config.Tool, "start", iface})
	c.settle(o, res)
	return c.finish(ctx, o)
}

// DisableTargets returns the interface names tried when disabling monitor
// mode on iface, in order.
func (c *Controller) DisableTargets(iface string) []string {
	if c.config.Suffix == "" || strings.HasSuffix(iface, c.config.Suffix) {
		return []string{iface}
	}
	return []string{iface, iface + c.config.Suffix}
}

// Disable stops monitor mode, trying iface and then its suffixed monitor
// name, stopping at the first success.
func (c *Controller) Disable(ctx context.Context, iface string) *Outcome {
	o := c.begin(ActionDisable, "Disable monitor on "+iface)
	if !c.requireTool(o) {
		return o
	}

	var last command.Result
	for _, target := range c.DisableTargets(iface) {
		last = c.run(ctx, o, "Running", []string{c.config.Tool, "stop", target})
		if last.Success() {
			o.Title = "Disable monitor on " + target
			break
		}
		if ctx.Err() != nil {
			break
		}
	}
	c.settle(o, last)
	return c.finish(ctx, o)
}

// CheckKill runs the tool's check-kill subcommand.
func (c *Controller) CheckKill(ctx context.Context) *Outcome {
	o := c.begin(ActionCheckKill, "Check Kill")
	if !c.requireTool(o) {
		return o
	}

	res := c.run(ctx, o, "Running", []string{c.config.Tool, "check", "kill"})
	c.settle(o, res)
	return c.finish(ctx, o)
}

// RestartNetwork tries each restart command in order and stops at the first
// success. The caller is responsible for asking the user first.
func (c *Controller) RestartNetwork(ctx context.Context) *Outcome {
	o := c.begin(ActionRestart, "Restart NetworkManager")

	results, ok := command.FirstSuccess(ctx, c.runner, c.config.Restart, func(i int, argv []string) {
		c.logger.Debug("trying restart method",
			zap.String("action_id", o.ID),
			zap.Int("method", i+1),
			zap.Strings("argv", argv),
		)
	})
	for _, res := range results {
		o.Attempts = append(o.Attempts, res)
		o.Log = append(o.Log, "Trying: "+res.String())
		o.Log = appendOutput(o.Log, res)
	}

	if ok {
		o.Success = true
		o.Title = "NetworkManager Restarted"
	} else {
		o.Err = &AggregateError{Action: "Could not restart NetworkManager", Attempts: results}
	}
	return c.finish(ctx, o)
}

// Refresh rediscovers interfaces. It always succeeds.
func (c *Controller) Refresh(ctx context.Context) *Outcome {
	o := c.begin(ActionRefresh, "Refresh")
	o.Success = true
	o.Interfaces = c.discover(ctx)
	o.Refreshed = true
	c.log(o)
	return o
}

func (c *Controller) begin(action Action, title string) *Outcome {
	return &Outcome{
		ID:     uuid.NewString(),
		Action: action,
		Title:  title,
	}
}

func (c *Controller) requireTool(o *Outcome) bool {
	if c.tools.Available(c.config.Tool) {
		return true
	}
	o.Err = &MissingToolError{Tool: c.config.Tool}
	c.log(o)
	return false
}

func (c *Controller) run(ctx context.Context, o *Outcome, verb string, argv []string) command.Result {
	o.Log = append(o.Log, verb+": "+strings.Join(argv, " "))
	res := c.runner.Run(ctx, argv)
	o.Attempts = append(o.Attempts, res)
	o.Log = appendOutput(o.Log, res)
	return res
}

func (c *Controller) settle(o *Outcome, res command.Result) {
	if res.Success() {
		o.Success = true
		return
	}
	o.Err = newCommandError(o.Title, res)
}

// finish rediscovers interfaces when anything ran, since monitor-mode
// changes rename, add or remove interfaces.
func (c *Controller) finish(ctx context.Context, o *Outcome) *Outcome {
	if o.Ran() {
		o.Interfaces = c.discover(ctx)
		o.Refreshed = true
	}
	c.log(o)
	return o
}

func (c *Controller) discover(ctx context.Context) []string {
	if c.discoverer == nil {
		return []string{}
	}
	names := c.discoverer.Discover(ctx)
	if names == nil {
		return []string{}
	}
	return names
}

func (c *Controller) log(o *Outcome) {
	fields := []zap.Field{
		zap.String("action_id", o.ID),
		zap.String("action", string(o.Action)),
		zap.String("title", o.Title),
		zap.Int("attempts", len(o.Attempts)),
		zap.Bool("success", o.Success),
	}
	if o.Refreshed {
		fields = append(fields, zap.Strings("interfaces", o.Interfaces))
	}
	if o.Err != nil {
		c.logger.Warn("action failed", append(fields, zap.Error(o.Err))...)
		return
	}
	c.logger.Info("action complete", fields...)
}

func appendOutput(lines []string, res command.Result) []string {
	if res.Stdout != "" {
		lines = append(lines, res.Stdout)
	}
	if res.Stderr != "" {
		lines = append(lines, res.Stderr)
	}
	return lines
}
