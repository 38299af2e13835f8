package main

import (
	"dslit/cmd/dslit/commands"
)

func main() {
	commands.Execute()
}
