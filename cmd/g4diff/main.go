// cmd/g4diff/main.go
package main

import (
	"g4diff/internal/appshell"
	"g4diff/internal/cli"
)

func main() {
	appshell.Main(cli.Run)
}
