package main

import "github.com/HJ-nkh/frameanalysis/cmd"

func main() {
	cmd.Execute()
}
