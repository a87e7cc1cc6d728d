package collector

import (
	"os/exec"

	"hostdash/model"
)

// runShell runs a pipeline through bash and captures stdout. Failures are
// recorded in the result rather than returned: a broken external command
// degrades its own panel, not the whole dashboard.
func runShell(command string) model.CommandResult {
	bash, err := exec.LookPath("bash")
	if err != nil {
		return model.CommandResult{Err: "bash not found"}
	}
	out, err := exec.Command(bash, "-c", command).Output()
	res := model.CommandResult{Output: string(out)}
	if err != nil {
		res.Err = err.Error()
	}
	return res
}

// runCommand runs a single program with args and captures stdout.
func runCommand(name string, args ...string) model.CommandResult {
	path, err := exec.LookPath(name)
	if err != nil {
		return model.CommandResult{Err: name + " not found"}
	}
	out, err := exec.Command(path, args...).Output()
	res := model.CommandResult{Output: string(out)}
	if err != nil {
		res.Err = err.Error()
	}
	return res
}
