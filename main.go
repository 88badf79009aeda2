package main

import "ledgersynth/cmd"

func main() {
	cmd.Execute()
}
