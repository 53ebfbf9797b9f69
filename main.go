package main

import "github.com/octoscout/octoscout/cmd"

func main() {
	cmd.Execute()
}
