// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"os"

	"github.com/tebeka/atexit"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "mipslet"
	app.Usage = "Symbolic assembler and register machine"
	app.Description = "Assembles a small MIPS-like instruction set and runs it against 32 registers"
	app.Commands = []*cli.Command{
		RunCommand,
		CheckCommand,
	}

	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		atexit.Fatal(err)
	}

	atexit.Exit(0)
}
