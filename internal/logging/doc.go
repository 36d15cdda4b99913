// Package logging provides structured logging for PacketShadow.
//
// This package owns the process-wide zap logger. Components take a *zap.Logger
// from GetLogger at construction time; the package-level helpers cover
// startup code that runs before anything is wired.
//
// # Log Levels
//
//   - Debug: full stdout/stderr of every command, discovery details
//   - Info: action outcomes, startup environment
//   - Warn: commands that could not be launched, failed actions
//   - Error: startup failures
//
// # Configuration
//
// Logging is silent unless PACKETSHADOW_LOG_LEVEL is set. Because the
// terminal belongs to the interactive UI, entries are written to the file
// named by PACKETSHADOW_LOG_FILE (the CLI defaults it to a file in the config
// directory):
//
//	if err := logging.Initialize("", ""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
// Components receive the logger explicitly and attach fields:
//
//	logger := logging.GetLogger()
//	logger.Info("action complete",
//	    zap.String("action_id", id),
//	    zap.String("action", "enable"),
//	)
package logging
