package main

import "github.com/mouse-blink/routelint/cmd"

func main() {
	cmd.Execute()
}
