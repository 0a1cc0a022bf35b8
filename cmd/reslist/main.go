package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/gops/agent"
	"github.com/spf13/cobra"
	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
)

func main() {
	startGops()
	os.Exit(Execute())
}

// NewRootCmd returns the root cobra command for the reslist CLI.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "reslist",
		Short:         "List resource directories across directories and jar/zip archives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := &globalFlags{}
	flags.register(cmd)

	cmd.AddCommand(newListCmd(flags, stdout))
	cmd.AddCommand(newRootsCmd(flags, stdout))
	return cmd
}

// Execute runs the CLI with the process stdio.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func startGops() {
	if os.Getenv("RESLIST_GOPS") == "" {
		return
	}
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Warn("gops", "err", err)
	}
}
