// Package cli implements the command line surface of hostsmith.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/hpcloud/tail"
	"github.com/sirupsen/logrus"
)

// LogFile returns the location of the hostsmith log followed by the logs
// command.
func LogFile() string {
	return filepath.Join(os.TempDir(), "hostsmith.log")
}

// Run parses the command line and dispatches the selected command.
func Run(log *logrus.Logger, build string) error {
	cliCtx := kong.Parse(&opts)

	switch cliCtx.Command() {
	case "list":
		return list(log)

	case "add <host> <ip>":
		return add(log)

	case "remove <host>":
		return remove(log)

	case "import <fname>":
		return importFile(log)

	case "export <fname>":
		return exportFile(log)

	case "restore":
		return restore(log)

	case "backup create":
		return backupCreate(log)
	case "backup ls":
		return backupLs(log)
	case "backup restore <name>":
		return backupRestore(log)

	case "config get":
		return configGet()
	case "config set <key> <value>":
		return configSet(log)

	case "flush":
		return flushDNS(log)

	case "logs":
		t, err := tail.TailFile(LogFile(), tail.Config{Follow: true})
		if err != nil {
			return fmt.Errorf("tail.TailFile: %w", err)
		}
		for line := range t.Lines {
			_, _ = os.Stdout.WriteString(line.Text + "\n")
		}
		return nil

	case "version":
		log.Infof("hostsmith: version %q", build)
		return nil

	default:
		return fmt.Errorf("unknown command: %s", cliCtx.Command())
	}
}
