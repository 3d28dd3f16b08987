package main

import "vpapic.dev/cmd/portfolio/commands"

func main() {
	commands.Execute()
}
