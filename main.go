package main

import "github.com/dirscope/dirscope/cmd"

func main() {
	cmd.Execute()
}
