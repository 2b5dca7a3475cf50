package main

import "github.com/luthersystems/lc/cmd"

func main() {
	cmd.Execute()
}
