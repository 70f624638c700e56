// SPDX-License-Identifier: MIT

package main

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperprep/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var f inputFlags
	cmd := &cobra.Command{
		Use:   "config FILE.csv...",
		Short: "Print the resolved options for a dataset as TOML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args, f.header)
			if err != nil {
				return err
			}
			user, err := f.options(cmd)
			if err != nil {
				return err
			}
			xs, err := in.Resolve()
			if err != nil {
				return err
			}
			set, err := config.Resolve(xs, user)
			if err != nil {
				return err
			}
			a.log.V(1).Info("resolved options", "options", len(set), "style", len(config.RemoveHyperArgs(set)))

			// TOML has no null; unset sequence options are left out.
			out := make(map[string]any, len(set))
			for k, v := range set {
				if v != nil {
					out[k] = v
				}
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}
	f.bind(cmd)

	return cmd
}
