package main

import "h3sed/cmd"

func main() {
	cmd.Execute()
}
