package main

import (
	"os"
)

func main() {
	cmd, svc := newRootCmd(defaultDeps())
	if err := execute(cmd, svc); err != nil {
		os.Exit(1)
	}
}
