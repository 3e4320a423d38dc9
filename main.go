// The main package for the rewindos executable.
package main

import (
	"github.com/jjf3/rewindos-christmas-episodes/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
