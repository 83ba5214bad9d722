// Twisty - interactive Rubik's cube for the terminal.
package main

import (
	"github.com/twistylab/twisty/internal/cli"
)

func main() {
	cli.Execute()
}
