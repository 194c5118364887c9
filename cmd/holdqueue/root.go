package main

import (
	"context"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/holdqueue/config"
	"github.com/AntonStoeckl/holdqueue/service"
)

const (
	flagSnapshotPath = "snapshot-path"
	flagBackend      = "backend"
	flagLogLevel     = "log-level"
)

// operation runs one service call and returns the value to print.
type operation func(ctx context.Context, svc *service.Service, args []string) (any, error)

type runner struct {
	root *cobra.Command
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "holdqueue",
		Short:        "Manage items, holds and their first-come queue",
		SilenceUsage: true,
	}

	root.PersistentFlags().String(flagSnapshotPath, "", "snapshot file (default <exe-dir>/data/holdqueue.json)")
	root.PersistentFlags().String(flagBackend, "", "storage backend: file or postgres")
	root.PersistentFlags().String(flagLogLevel, "", "log level: debug, info, warn or error")

	r := runner{root: root}
	root.AddCommand(
		newItemCommand(r),
		newHoldCommand(r),
		newUnitCommand(r),
		newQueueCommand(r),
	)

	return root
}

func (r runner) run(op operation) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := r.loadConfig()
		if err != nil {
			return err
		}

		rt, err := newRuntime(cmd.Context(), cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := rt.close(); closeErr != nil {
				rt.logger.Error("cleanup failed", "error", closeErr)
			}
		}()

		result, err := op(cmd.Context(), rt.service, args)
		if err != nil {
			return err
		}

		return writeJSON(cmd.OutOrStdout(), result)
	}
}

func (r runner) loadConfig() (config.Config, error) {
	exeDir, err := config.ExecutableDir()
	if err != nil {
		return config.Config{}, err
	}

	v := config.NewViper(exeDir)
	flags := r.root.PersistentFlags()

	bindings := map[string]string{
		config.KeySnapshotPath: flagSnapshotPath,
		config.KeyBackend:      flagBackend,
		config.KeyLogLevel:     flagLogLevel,
	}
	for key, name := range bindings {
		if bindErr := v.BindPFlag(key, flags.Lookup(name)); bindErr != nil {
			return config.Config{}, bindErr
		}
	}

	return config.Load(v, exeDir)
}

func writeJSON(w io.Writer, v any) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))

	return err
}
