package main

import "apparelstore/cmd/api/commands"

func main() {
	commands.Execute()
}
