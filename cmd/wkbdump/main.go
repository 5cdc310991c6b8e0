// Command wkbdump decodes hex-encoded WKB and prints a summary of each geometry.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.StandardLogger()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
