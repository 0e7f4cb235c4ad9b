package main

import "github.com/julienpequegnot/qalam/cmd"

func main() {
	cmd.Execute()
}
