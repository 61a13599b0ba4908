package main

import "github.com/OpenTraceLab/OpenTraceNetlist/cmd/onv/cmd"

func main() {
	cmd.Execute()
}
