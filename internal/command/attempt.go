package command

import "context"

// AttemptFunc is called before each candidate runs. Index is zero-based.
type AttemptFunc func(index int, argv []string)

// FirstSuccess runs each candidate in order and stops at the first one that
// exits zero. It returns every result produced and whether any succeeded.
// An empty candidate list runs nothing and reports no success.
func FirstSuccess(ctx context.Context, runner Runner, candidates [][]string, onAttempt AttemptFunc) ([]Result, bool) {
	results := make([]Result, 0, len(candidates))
	for i, argv := range candidates {
		if onAttempt != nil {
			onAttempt(i, argv)
		}
		res := runner.Run(ctx, argv)
		results = append(results, res)
		if res.Success() {
			return results, true
		}
		if ctx.Err() != nil {
			break
		}
	}
	return results, false
}
