package main

import "github.com/d-kuro/dictgen/internal/cmd"

func main() {
	cmd.Execute()
}
