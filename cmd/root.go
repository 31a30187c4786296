// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package cmd provides the root command for the eureka CLI.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/defenseunicorns/eureka"
	"github.com/defenseunicorns/eureka/config"
)

// NewRootCmd creates the root command for the eureka CLI.
func NewRootCmd() *cobra.Command {
	var (
		level     string
		ver       bool
		configDir string
	)

	var store *eureka.Store // set in PersistentPreRunE, not via CLI flag

	// $HOME/.eureka < EUREKA_CONFIG_DIR < --config-dir
	openStore := func(cmd *cobra.Command) error {
		switch {
		case cmd.Flags().Changed("config-dir"):
			store = eureka.NewStore(afero.NewOsFs(), filepath.Clean(os.ExpandEnv(configDir)))
		case os.Getenv(config.DirEnvVar) != "":
			store = eureka.NewStore(afero.NewOsFs(), filepath.Clean(os.Getenv(config.DirEnvVar)))
		default:
			var err error
			store, err = eureka.NewDefaultStore()
			if err != nil {
				return err
			}
		}

		log.FromContext(cmd.Context()).Debug("using config directory", "dir", store.Dir())
		return nil
	}

	root := &cobra.Command{
		Use:   "eureka",
		Short: "Manage the per-user configuration of eureka",
		Example: `
eureka init

eureka set repo ~/src/ideas

eureka set editor /usr/bin/vim

eureka show -o text
`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			log.FromContext(cmd.Context()).SetLevel(l)

			if ver && cmd.Parent() == nil {
				return nil
			}

			return openStore(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !ver {
				return cmd.Help()
			}

			bi, ok := debug.ReadBuildInfo()
			if !ok {
				return fmt.Errorf("version information not available")
			}
			switch bi.Main.Path {
			case "github.com/defenseunicorns/eureka":
				fmt.Fprintln(cmd.OutOrStdout(), bi.Main.Version)
			default:
				for _, dep := range bi.Deps {
					if dep.Path == "github.com/defenseunicorns/eureka" {
						fmt.Fprintln(cmd.OutOrStdout(), dep.Version)
						break
					}
				}
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&level, "log-level", "l", "info", "Set log level")
	_ = root.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{log.DebugLevel.String(), log.InfoLevel.String(), log.WarnLevel.String(), log.ErrorLevel.String(), log.FatalLevel.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	root.PersistentFlags().StringVar(&configDir, "config-dir", "${HOME}/"+config.DirName, "Configuration directory (env: "+config.DirEnvVar+")") // mirrors config.DefaultDirectory
	_ = root.MarkPersistentFlagDirname("config-dir")
	root.Flags().BoolVarP(&ver, "version", "V", false, "Print version number and exit")

	getStore := func() *eureka.Store { return store }

	root.AddCommand(
		newInitCmd(getStore),
		newGetCmd(getStore),
		newSetCmd(getStore),
		newRemoveCmd(getStore),
		newPathCmd(getStore),
		newShowCmd(getStore),
		newDescribeCmd(getStore),
	)

	return root
}

// Main executes the root command for the eureka CLI.
//
// It returns 0 on success, 1 on failure and logs any errors.
func Main() int {
	cli := NewRootCmd()

	ctx := context.Background()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	logger.SetStyles(DefaultStyles())

	ctx = log.WithContext(ctx, logger)
	_, err := cli.ExecuteContextC(ctx)
	if err != nil {
		logger.Error(err)
	}
	return ParseExitCode(err)
}

// ParseExitCode calculates the exit code from a given error
//
// 0 - the error was nil
// 1 - there was some error
func ParseExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// colorEnabled reports whether stdout should receive styled output
func colorEnabled() bool {
	return !termenv.EnvNoColor() && term.IsTerminal(int(os.Stdout.Fd()))
}
