//go:build !restricted

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/robosanta/oskit/iop"
	"github.com/robosanta/oskit/registry"
)

// Write commands are unavailable in restricted builds, matching the
// library: compiling with -tags restricted removes them outright.

var setType string

func init() {
	cmd := newRegSetCmd()
	cmd.Flags().StringVar(&setType, "type", "sz", "Value type (sz, dword, binary)")
	regCmd.AddCommand(cmd)
	regCmd.AddCommand(newRegDeleteCmd())
}

func newRegSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key-path> <value-name> <data>",
		Short: "Set a machine registry value",
		Long: `The set command writes a value beneath HKEY_LOCAL_MACHINE, creating
the key path as needed.

Example:
  oskitctl reg set "Software\RoboSanta" "Server" "santa.example.net"
  oskitctl reg set "Software\RoboSanta" "Timeout" "30" --type dword
  oskitctl reg set "Software\RoboSanta" "Blob" "deadbeef" --type binary`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegSet(args[0], args[1], args[2])
		},
	}
}

func runRegSet(keyPath, valueName, data string) error {
	op := iop.New()

	var err error
	switch setType {
	case "sz":
		err = registry.SetString(op, keyPath, valueName, data)
	case "dword":
		var u uint64
		u, err = strconv.ParseUint(data, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid dword %q: %w", data, err)
		}
		err = registry.SetU32(op, keyPath, valueName, uint32(u))
	case "binary":
		var raw []byte
		raw, err = hex.DecodeString(data)
		if err != nil {
			return fmt.Errorf("invalid hex data %q: %w", data, err)
		}
		err = registry.SetMachineValue(op, keyPath, valueName, raw)
	default:
		return fmt.Errorf("unknown value type %q", setType)
	}
	if err != nil {
		return failWithProvenance(op, err)
	}

	printVerbose("set %s\\%s (%s)\n", keyPath, valueName, setType)
	return nil
}

func newRegDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key-path> <value-name>",
		Short: "Delete a machine registry value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := iop.New()
			if err := registry.DeleteValue(op, args[0], args[1]); err != nil {
				return failWithProvenance(op, err)
			}
			printVerbose("deleted %s\\%s\n", args[0], args[1])
			return nil
		},
	}
}
