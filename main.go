package main

import "github.com/kasuboski/nextup/cmd"

func main() {
	cmd.Execute()
}
