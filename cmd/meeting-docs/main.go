package main

import "github.com/civicdocs/meeting-docs/internal/cli"

func main() {
	cli.Execute()
}
