// Package main is the entry point for the RoomieFlow CLI application.
package main

import (
	"roomieflow/cli/cmd"
)

func main() {
	cmd.Execute()
}
