// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ezrec/mipslet/config"
	"github.com/ezrec/mipslet/cpu"
	"github.com/ezrec/mipslet/emulator"
)

var CheckCommand = &cli.Command{
	Name:        "check",
	Usage:       "Assembles a source file without running it",
	ArgsUsage:   "FILE",
	Description: "Assembles a source file and lists the program lines, marking retracted lines with '-'.",
	Action:      CheckAction,
	Flags: []cli.Flag{
		ConfigFlag,
		OutputFlag,
		DefineFlag,
		LocaleFlag,
		VerboseFlag,
	},
}

func CheckAction(ctx *cli.Context) error {
	conf, err := loadConfig(ctx)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	filename, err := sourceFile(ctx)
	if err != nil {
		return err
	}

	output, err := openOutput(ctx)
	if err != nil {
		return err
	}

	_, err = check(conf, filename, output)
	return err
}

// check assembles a source file and lists the program.
func check(conf *config.Config, filename string, output io.Writer) (prog *cpu.Program, err error) {
	emu := emulator.NewEmulator()
	emu.StepLimit = conf.StepLimit

	prog, err = assemble(conf, emu, filename)
	if err != nil {
		return
	}

	_, err = io.WriteString(output, prog.String())
	return
}
