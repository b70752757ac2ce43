// Command pathfind runs searches over YAML grid layouts and generates mazes.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
