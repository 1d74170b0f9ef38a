package main

import "github.com/rectfill/rectfill/cmd"

// main is the entry point of the rectfill CLI.
func main() {
	cmd.Execute()
}
