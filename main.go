package main

import "github.com/iksnae/voice-pulse/cmd"

func main() {
	cmd.Execute()
}
