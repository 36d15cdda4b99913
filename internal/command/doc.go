// Package command runs external programs and captures what they print.
//
// Commands are given as an exact argv; no shell is involved. A Runner never
// returns an error to its caller: a program that cannot be started produces a
// Result with ExitCode -1 and the launch error in Stderr, so every caller can
// treat "binary missing" and "binary failed" the same way.
//
//	runner := command.NewExecRunner(command.Config{}, logger)
//	res := runner.Run(ctx, []string{"iw", "dev"})
//	if res.Success() {
//	    fmt.Println(res.Stdout)
//	}
//
// FirstSuccess implements the "try A, else B, else C" pattern used for
// fallback command lines.
package command
