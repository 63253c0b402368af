package main

import (
	"context"
	"os"

	"github.com/sandevgo/uniadvisor/internal/config"
	"github.com/sandevgo/uniadvisor/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "uniadvisor",
	Short: "UniAdvisor — AI university recommendation service",
	Long:  `UniAdvisor is a conversational agent that recommends and compares universities.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
