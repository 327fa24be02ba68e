package main

import (
	"github.com/RyanBlaney/signal-workbench/cmd"
)

func main() {
	cmd.Execute()
}
