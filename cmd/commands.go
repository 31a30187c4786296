// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/defenseunicorns/eureka"
	"github.com/defenseunicorns/eureka/config"
)

// keyArg completes the first positional argument with the known keys
func keyArg(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.AvailableKeys(), cobra.ShellCompDirectiveNoFileComp
}

var keyList = strings.Join(config.AvailableKeys(), ", ")

func newInitCmd(store func() *eureka.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.FromContext(cmd.Context())
			s := store()

			if s.DirectoryExists() {
				logger.Info("config directory already exists", "dir", s.Dir())
				return nil
			}

			if err := s.CreateDirectory(); err != nil {
				return err
			}
			logger.Info("created config directory", "dir", s.Dir())
			return nil
		},
	}
}

func newGetCmd(store func() *eureka.Store) *cobra.Command {
	return &cobra.Command{
		Use:               "get KEY",
		Short:             "Print a stored value (" + keyList + ")",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: keyArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := config.ParseKey(args[0])
			if err != nil {
				return err
			}

			value, err := store().Read(key)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newSetCmd(store func() *eureka.Store) *cobra.Command {
	return &cobra.Command{
		Use:               "set KEY VALUE",
		Short:             "Store a value (" + keyList + ")",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: keyArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())
			s := store()

			key, err := config.ParseKey(args[0])
			if err != nil {
				return err
			}

			if !s.DirectoryExists() {
				logger.Debug("creating config directory", "dir", s.Dir())
				if err := s.CreateDirectory(); err != nil {
					return err
				}
			}

			if err := s.Write(key, args[1]); err != nil {
				return err
			}

			p, _ := s.Path(key)
			logger.Debug("stored value", "key", key, "path", p)
			return nil
		},
	}
}

func newRemoveCmd(store func() *eureka.Store) *cobra.Command {
	return &cobra.Command{
		Use:               "rm KEY",
		Aliases:           []string{"remove", "unset"},
		Short:             "Remove a stored value (" + keyList + ")",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: keyArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := config.ParseKey(args[0])
			if err != nil {
				return err
			}

			if err := store().Remove(key); err != nil {
				return err
			}

			log.FromContext(cmd.Context()).Info("removed", "key", key)
			return nil
		},
	}
}

func newPathCmd(store func() *eureka.Store) *cobra.Command {
	return &cobra.Command{
		Use:               "path [KEY]",
		Short:             "Print the configuration directory, or the file backing KEY",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: keyArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := store()

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), s.Dir())
				return nil
			}

			key, err := config.ParseKey(args[0])
			if err != nil {
				return err
			}

			p, err := s.Path(key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newShowCmd(store func() *eureka.Store) *cobra.Command {
	format := eureka.DefaultOutputFormat // VarP does not allow you to set a default value

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every stored value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := store().Values()
			if err != nil {
				return err
			}
			return eureka.PrintValues(cmd.OutOrStdout(), values, format, colorEnabled())
		},
	}

	cmd.Flags().VarP(&format, "output", "o", fmt.Sprintf(`Set output format ("%s")`, strings.Join(eureka.AvailableOutputFormats(), `", "`)))
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return eureka.AvailableOutputFormats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newDescribeCmd(store func() *eureka.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print a summary of every key, its file and its value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			md, err := eureka.Describe(store())
			if err != nil {
				return err
			}

			out, err := eureka.RenderMarkdown(md, colorEnabled())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
