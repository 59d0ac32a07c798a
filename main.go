package main

import (
	"github.com/saikumarkadapa/portfolio-api/cmd"
	_ "github.com/saikumarkadapa/portfolio-api/cmd/cli"
	_ "github.com/saikumarkadapa/portfolio-api/cmd/server"
)

func main() {
	cmd.Execute()
}
