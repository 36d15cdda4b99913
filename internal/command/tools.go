package command

import "os/exec"

// ToolChecker reports whether a binary can be found on the execution path.
type ToolChecker interface {
	Available(name string) bool
}

// PathChecker resolves binaries with exec.LookPath.
type PathChecker struct{}

// Available implements ToolChecker.
func (PathChecker) Available(name string) bool {
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}
