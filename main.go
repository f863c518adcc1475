package main

import "github.com/patrick-morrison/swantides/cmd"

func main() {
	cmd.Execute()
}
