package main

import (
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'tna.atn'.
func tracer() tracing.Trace {
	return tracing.Select("tna.atn")
}

var traceFlag string

var rootCmd = &cobra.Command{
	Use:   "tni",
	Short: "tni is an interactive inspector for transition-network automata",
	Long: `tni loads a small demo automaton and lets you poke at it: list its
states, walk its transitions, and query follow sets and expected tokens
from any state, with or without a simulated invocation stack. It is
intended as a sandbox during parser-driver development.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceFlag, "trace", "Info",
		"Trace level [Debug|Info|Error]")
}

func run(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tracer().SetTraceLevel(traceLevel(traceFlag))
	pterm.Info.Println("Welcome to TNI") // colored welcome message
	tracer().Infof("Trace level is %s", traceFlag)
	//
	insp, err := newInspector()
	if err != nil {
		return err
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	insp.REPL()
	return nil
}

func traceLevel(name string) tracing.TraceLevel {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
