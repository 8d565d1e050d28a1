package main

import "github.com/xvierd/mindminute/cmd"

func main() {
	cmd.Execute()
}
