package main

import "github.com/alexiusacademia/gohydro/cmd"

func main() {
	cmd.Execute()
}
