// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tebeka/atexit"
	"github.com/urfave/cli/v2"

	"github.com/ezrec/mipslet/config"
	"github.com/ezrec/mipslet/cpu"
	"github.com/ezrec/mipslet/emulator"
	"github.com/ezrec/mipslet/translate"
)

var (
	ErrSourceMissing = errors.New("source file missing")
	ErrDefineSyntax  = errors.New("define must be NAME=VALUE")
)

var (
	ConfigFlag = &cli.PathFlag{
		Name:  "config",
		Usage: "Path to a YAML configuration file",
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the output. Options: text, json, yaml",
		DefaultText: "text",
	}
	OutputFlag = &cli.PathFlag{
		Name:  "output",
		Usage: "output file path. Default: stdout",
	}
	StepLimitFlag = &cli.IntFlag{
		Name:        "step-limit",
		Usage:       "executed steps before a run is aborted as an infinite loop",
		DefaultText: fmt.Sprintf("%d", emulator.STEP_LIMIT),
	}
	DefineFlag = &cli.StringSliceFlag{
		Name:  "define",
		Usage: "predefine an assembler equate, as NAME=VALUE",
	}
	LocaleFlag = &cli.StringFlag{
		Name:  "locale",
		Usage: "language of diagnostics. Default: from the environment",
	}
	VerboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log assembler and emulator activity",
	}
)

// loadConfig reads the configuration file, if any, and applies the command
// line flags over it.
func loadConfig(ctx *cli.Context) (conf *config.Config, err error) {
	conf = config.Default()
	if path := ctx.Path(ConfigFlag.Name); path != "" {
		conf, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if ctx.IsSet(FormatFlag.Name) {
		conf.Format = ctx.String(FormatFlag.Name)
	}
	if ctx.IsSet(StepLimitFlag.Name) {
		conf.StepLimit = ctx.Int(StepLimitFlag.Name)
	}
	if ctx.IsSet(LocaleFlag.Name) {
		conf.Locale = ctx.String(LocaleFlag.Name)
	}
	if ctx.IsSet(VerboseFlag.Name) {
		conf.Verbose = ctx.Bool(VerboseFlag.Name)
	}
	for _, define := range ctx.StringSlice(DefineFlag.Name) {
		name, value, ok := strings.Cut(define, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrDefineSyntax, define)
		}
		conf.Define(name, value)
	}

	err = conf.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Locale != "" {
		translate.SetLanguage(conf.Locale)
	}

	return
}

// assemble parses a source file with the emulator and configured defines.
func assemble(conf *config.Config, emu *emulator.Emulator, filename string) (prog *cpu.Program, err error) {
	inf, err := os.Open(filename)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: conf.Verbose}
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}
	for name, value := range conf.Defines {
		asm.Predefine(name, value)
	}

	prog, err = asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", filename, err)
		return
	}

	return
}

// openOutput returns the output writer. Files are closed at exit.
func openOutput(ctx *cli.Context) (output io.Writer, err error) {
	path := ctx.Path(OutputFlag.Name)
	if path == "" {
		output = ctx.App.Writer
		if output == nil {
			output = os.Stdout
		}
		return
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("unable to determine absolute path: %w", err)
	}

	ouf, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("unable to open output file: %w", err)
	}
	atexit.Register(func() {
		_ = ouf.Close()
	})

	output = ouf
	return
}

// sourceFile returns the single source file argument.
func sourceFile(ctx *cli.Context) (filename string, err error) {
	filename = ctx.Args().First()
	if filename == "" || ctx.NArg() != 1 {
		err = ErrSourceMissing
	}
	return
}
