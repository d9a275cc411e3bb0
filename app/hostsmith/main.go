package main

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"

	"github.com/hostsmith/hostsmith/app/hostsmith/cli"
)

// build is the git version of this program. It is set using build flags.
var build = "develop"

func main() {
	log := logrus.Logger{
		Out: io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cli.LogFile(),
			MaxSize:    5,
			MaxBackups: 2,
		}),
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}

	if err := cli.Run(&log, build); err != nil {
		log.Infof("main: ERROR: %s", err)
		os.Exit(1)
	}
}
