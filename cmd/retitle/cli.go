package main

import (
	"context"
	"io"

	"github.com/fwojciec/retitle/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Fixer  *batch.Fixer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir    string `short:"C" default:"." help:"Archive folder containing posts/ and data/"`
	DryRun bool   `short:"n" name:"dry-run" help:"Show what would be fixed without writing any files"`
	Debug  bool   `help:"Log every file operation to stderr"`
}

// FixCmd runs a correction pass and prints its progress.
type FixCmd struct{}
