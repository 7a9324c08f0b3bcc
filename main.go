package main

import "github.com/mouse-blink/snitch/cmd"

func main() {
	cmd.Execute()
}
