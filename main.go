package main

import "phi-inspection/cmd"

func main() {
	cmd.Execute()
}
