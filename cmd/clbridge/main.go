// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/luxfi/clbridge"
	"github.com/luxfi/clbridge/config"
	"github.com/luxfi/clbridge/host"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session is what every subcommand needs, built once from flags and config.
type session struct {
	table  *clbridge.Table
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clbridge",
		Short: "Translate OpenCL status codes and raise them as host exceptions",
		Long: `clbridge is the failure boundary between an OpenCL backend and a managed runtime.

This CLI translates native status codes into diagnostics and replays raises
against an in-process host environment.`,
		Version:       fmt.Sprintf("%s (built %s)", version, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(config.ConfigFileKey, os.Getenv(config.ConfigFileEnvKey), "YAML file with log level and extension codes")
	rootCmd.PersistentFlags().String(config.LogLevelKey, "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newTranslateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newRaiseCmd())
	rootCmd.AddCommand(newCheckCmd())
	return rootCmd
}

func loadSession(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString(config.ConfigFileKey)
	level, _ := cmd.Flags().GetString(config.LogLevelKey)

	cfg := &config.Config{}
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}
	if level != "" {
		cfg.LogLevel = level
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, err
	}
	return &session{table: table, logger: logger}, nil
}

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "translate CODE...",
		Short:   "Translate status codes into diagnostics",
		Long:    `Translate each status code, given as a number or a CL_* name, into its diagnostic message.`,
		Example: "  clbridge translate -- -5 CL_INVALID_VALUE 0x7fffffff",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadSession(cmd)
			if err != nil {
				return err
			}
			defer e.logger.Sync() //nolint:errcheck

			out := cmd.OutOrStdout()
			for _, arg := range args {
				status, err := e.table.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d\t%s\n", int32(status), e.table.Translate(status))
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every known status code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadSession(cmd)
			if err != nil {
				return err
			}
			defer e.logger.Sync() //nolint:errcheck

			out := cmd.OutOrStdout()
			for _, entry := range e.table.Entries() {
				fmt.Fprintf(out, "%d\t%s\t%s\n", int32(entry.Status), entry.Name, entry.Description)
			}
			return nil
		},
	}
}

func newRaiseCmd() *cobra.Command {
	raiseCmd := &cobra.Command{
		Use:   "raise",
		Short: "Raise an exception in a fresh host environment",
	}
	raiseCmd.AddCommand(&cobra.Command{
		Use:   "generic MESSAGE",
		Short: "Raise a generic runtime error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaise(cmd, func(sink clbridge.ExceptionSink) error {
				return clbridge.ThrowError(sink, args[0])
			})
		},
	})
	raiseCmd.AddCommand(&cobra.Command{
		Use:   "class NAME",
		Short: "Raise a class-not-found error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaise(cmd, func(sink clbridge.ExceptionSink) error {
				return clbridge.ThrowNoClassDefFound(sink, args[0])
			})
		},
	})
	raiseCmd.AddCommand(&cobra.Command{
		Use:   "method CLASS METHOD SIGNATURE",
		Short: "Raise a no-such-method error",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaise(cmd, func(sink clbridge.ExceptionSink) error {
				return clbridge.ThrowNoSuchMethod(sink, args[0], args[1], args[2])
			})
		},
	})
	return raiseCmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check OP CODE",
		Short:   "Validate the status of a native call and raise it on failure",
		Example: "  clbridge check clEnqueueNDRangeKernel -- -5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadSession(cmd)
			if err != nil {
				return err
			}
			defer e.logger.Sync() //nolint:errcheck

			op := args[0]
			status, err := e.table.Parse(args[1])
			if err != nil {
				return err
			}
			return observe(cmd.OutOrStdout(), host.Invoke(cmd.Context(), func(env *host.Env) error {
				if err := e.table.Check(e.logger, op, status); err != nil {
					return e.table.ThrowStatus(env, op, status)
				}
				return nil
			}, host.WithLogger(e.logger)))
		},
	}
}

func runRaise(cmd *cobra.Command, raise func(clbridge.ExceptionSink) error) error {
	e, err := loadSession(cmd)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck

	return observe(cmd.OutOrStdout(), host.Invoke(cmd.Context(), func(env *host.Env) error {
		return raise(env)
	}, host.WithLogger(e.logger)))
}

// observe prints what the managed caller sees. Only a failed raise is an
// error of the command itself.
func observe(out io.Writer, err error) error {
	if err == nil {
		fmt.Fprintln(out, "ok")
		return nil
	}
	var signalErr *clbridge.SignalError
	if errors.As(err, &signalErr) {
		return err
	}
	var exc *host.Exception
	if errors.As(err, &exc) {
		fmt.Fprintf(out, "%s\t%s\n", exc.Class, exc.Message)
		return nil
	}
	return err
}
