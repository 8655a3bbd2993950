package main

import "github.com/sportarr/sportarr/cmd"

func main() {
	cmd.Execute()
}
