package main

import "github.com/anirudhraja/osdwire/cmd/osdwire/run"

func main() {
	run.Execute()
}
