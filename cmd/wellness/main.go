package main

import "dhanbad/wellness-admin/cmd/wellness/commands"

func main() {
	commands.Execute()
}
