// Package flush provides support for clearing the operating system's
// resolver cache so hosts file edits take effect immediately.
package flush

import (
	"fmt"
	"os/exec"
	"runtime"
)

// DNS clears the platform resolver cache. The flush is best effort; a
// platform without a known flush command reports an error and the edit
// simply takes effect on the resolver's own schedule.
func DNS() error {
	var cmds [][]string

	switch runtime.GOOS {
	case "windows":
		cmds = [][]string{{"ipconfig", "/flushdns"}}

	case "darwin":
		cmds = [][]string{
			{"dscacheutil", "-flushcache"},
			{"killall", "-HUP", "mDNSResponder"},
		}

	case "linux":
		cmds = [][]string{{"resolvectl", "flush-caches"}}

	default:
		return fmt.Errorf("no resolver flush command for %s", runtime.GOOS)
	}

	for _, args := range cmds {
		cmd := exec.Command(args[0], args[1:]...)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("cmd.CombinedOutput: %s: %w: %s", args[0], err, out)
		}
	}

	return nil
}
