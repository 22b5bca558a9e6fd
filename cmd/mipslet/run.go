// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/tebeka/atexit"
	"github.com/urfave/cli/v2"

	"github.com/ezrec/mipslet/config"
	"github.com/ezrec/mipslet/emulator"
	"github.com/ezrec/mipslet/render"
)

var RunCommand = &cli.Command{
	Name:        "run",
	Usage:       "Assembles and runs a source file",
	ArgsUsage:   "FILE",
	Description: "Assembles a source file, runs it from line 0 and reports the registers it used. The exit status is 1 when the run fails.",
	Action:      RunAction,
	Flags: []cli.Flag{
		ConfigFlag,
		FormatFlag,
		OutputFlag,
		StepLimitFlag,
		DefineFlag,
		LocaleFlag,
		VerboseFlag,
	},
}

func RunAction(ctx *cli.Context) error {
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

	result, err := run(conf, filename, output)
	if err != nil {
		return err
	}

	if !result.Halted() {
		atexit.Exit(1)
	}

	return nil
}

// run assembles and executes a source file, and renders the result.
func run(conf *config.Config, filename string, output io.Writer) (result emulator.RunResult, err error) {
	renderer, err := render.NewRenderer(conf.Format)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = conf.Verbose
	emu.StepLimit = conf.StepLimit

	emu.Program, err = assemble(conf, emu, filename)
	if err != nil {
		return
	}

	result = emu.Assemble()
	if conf.Verbose && !result.Halted() {
		log.Printf("%v: %v", filename, result.Err)
	}

	err = renderer.Render(result, output)
	if err != nil {
		err = fmt.Errorf("unable to write report: %w", err)
		return
	}

	return
}
