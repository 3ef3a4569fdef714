package main

import "cutter/cmd"

func main() {
	cmd.Execute()
}
