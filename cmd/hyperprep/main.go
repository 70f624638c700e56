// SPDX-License-Identifier: MIT

// Command hyperprep prepares CSV datasets for plotting and prints the result
// as JSON.
//
//	hyperprep prepare --normalize --labels a,a,b,b data1.csv data2.csv
//	hyperprep config --config opts.toml data.csv
package main

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all sub-commands.
type app struct {
	verbose bool
	log     logr.Logger
	zap     *zap.Logger
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard()}
	rootCmd := &cobra.Command{
		Use:           "hyperprep",
		Short:         "Prepare multi-series data for hyperplot-style rendering",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.zap = newZap(cmd.ErrOrStderr(), a.verbose)
			a.log = newLogger(a.zap)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.zap != nil {
				_ = a.zap.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every preparation stage")

	rootCmd.AddCommand(newPrepareCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}
