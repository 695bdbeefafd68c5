//go:build !restricted

package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/robosanta/oskit/iop"
	"github.com/robosanta/oskit/registry"
)

// applyFile is the schema of an apply document:
//
//	values:
//	  - key: Software\RoboSanta
//	    name: Timeout
//	    type: dword
//	    data: "30"
type applyFile struct {
	Values []applyEntry `yaml:"values"`
}

type applyEntry struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
	Type string `yaml:"type"` // sz | dword | binary
	Data string `yaml:"data"`
}

func init() {
	regCmd.AddCommand(newRegApplyCmd())
}

func newRegApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file.yaml>",
		Short: "Apply a YAML document of registry values",
		Long: `The apply command writes every entry of a YAML document beneath
HKEY_LOCAL_MACHINE. Entries are applied in order; the first failure
stops the run.

Example:
  oskitctl reg apply defaults.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegApply(args[0])
		},
	}
}

func runRegApply(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var doc applyFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Values) == 0 {
		return fmt.Errorf("%s: no values to apply", path)
	}

	op := iop.New()
	for i, e := range doc.Values {
		if err := applyOne(op, e); err != nil {
			slog.Error("apply failed", "index", i, "key", e.Key, "name", e.Name, "error", err)
			return failWithProvenance(op, err)
		}
		printVerbose("applied %s\\%s (%s)\n", e.Key, e.Name, e.Type)
	}

	printInfo("applied %d value(s)\n", len(doc.Values))
	return nil
}

func applyOne(op *iop.IOP, e applyEntry) error {
	if e.Key == "" || e.Name == "" {
		return fmt.Errorf("entry needs both key and name")
	}
	switch e.Type {
	case "sz", "":
		return registry.SetString(op, e.Key, e.Name, e.Data)
	case "dword":
		u, err := strconv.ParseUint(e.Data, 0, 32)
		if err != nil {
			return fmt.Errorf("%s\\%s: invalid dword %q: %w", e.Key, e.Name, e.Data, err)
		}
		return registry.SetU32(op, e.Key, e.Name, uint32(u))
	case "binary":
		raw, err := hex.DecodeString(e.Data)
		if err != nil {
			return fmt.Errorf("%s\\%s: invalid hex data: %w", e.Key, e.Name, err)
		}
		return registry.SetMachineValue(op, e.Key, e.Name, raw)
	}
	return fmt.Errorf("%s\\%s: unknown type %q", e.Key, e.Name, e.Type)
}
