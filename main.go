package main

import "github.com/maikh/pathtracer/cmd"

func main() {
	cmd.Execute()
}
