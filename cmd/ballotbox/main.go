package main

import (
	"runtime"

	"boscoin.io/ballotbox/cmd/ballotbox/cmd"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	cmd.Execute()
}
