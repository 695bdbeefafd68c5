package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robosanta/oskit/iop"
	"github.com/robosanta/oskit/registry"
)

var getU32Default uint32

// regCmd groups the registry subcommands; the write commands attach
// themselves in set.go unless the build is restricted.
var regCmd = &cobra.Command{
	Use:   "reg",
	Short: "Read and write machine-scoped registry values",
}

func init() {
	regCmd.AddCommand(newRegGetCmd())

	getU32 := newRegGetU32Cmd()
	getU32.Flags().Uint32Var(&getU32Default, "default", 0, "Default returned when the value is absent")
	regCmd.AddCommand(getU32)

	rootCmd.AddCommand(regCmd)
}

func newRegGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key-path> <value-name>",
		Short: "Get the raw bytes of a machine registry value",
		Long: `The get command retrieves a value beneath HKEY_LOCAL_MACHINE without
interpreting its type.

Example:
  oskitctl reg get "Software\RoboSanta" "Server"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegGet(args[0], args[1])
		},
	}
}

func runRegGet(keyPath, valueName string) error {
	op := iop.New()
	v, err := registry.GetMachineValue(op, keyPath, valueName)
	if err != nil {
		return failWithProvenance(op, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"key":   keyPath,
			"name":  valueName,
			"type":  uint32(v.Type),
			"size":  v.Size,
			"bytes": hex.EncodeToString(v.Data()),
		})
	}

	printInfo("type: %d  size: %d  offset: %d  length: %d\n", v.Type, v.Size, v.Off, v.Len)
	printInfo("%s\n", hex.Dump(v.Data()))
	if s, err := v.AsString(); err == nil {
		printInfo("string: %q\n", s)
	}
	return nil
}

func newRegGetU32Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-u32 <key-path> <value-name>",
		Short: "Get a 32-bit unsigned integer value with default fallback",
		Long: `The get-u32 command retrieves a numeric value beneath
HKEY_LOCAL_MACHINE. An absent value yields the --default as success; a
present but malformed value is an error and the default is never
substituted.

Example:
  oskitctl reg get-u32 "Software\RoboSanta" "Timeout" --default 30`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegGetU32(args[0], args[1])
		},
	}
}

func runRegGetU32(keyPath, valueName string) error {
	op := iop.New()
	v, err := registry.GetU32(op, keyPath, valueName, getU32Default)
	if err != nil {
		return failWithProvenance(op, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"key": keyPath, "name": valueName, "value": v,
		})
	}
	printInfo("%d\n", v)
	return nil
}

// failWithProvenance surfaces the recorded failure chain in verbose
// mode and returns the error for cobra to report.
func failWithProvenance(op *iop.IOP, err error) error {
	if verbose && op.Len() > 0 {
		fmt.Println(op.String())
	}
	return err
}
