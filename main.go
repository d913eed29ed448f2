package main

import "acetime/cmd"

func main() {
	cmd.Execute()
}
