package main

import "github.com/raxod502/hyposchedule/cmd"

func main() {
	cmd.Execute()
}
