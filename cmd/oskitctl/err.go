package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/robosanta/oskit/iop"
	"github.com/robosanta/oskit/oserr"
)

var errNet bool

func init() {
	cmd := newErrExplainCmd()
	cmd.Flags().BoolVar(&errNet, "net", false, "Interpret the code in the network-subsystem error space")
	errCmd := &cobra.Command{
		Use:   "err",
		Short: "Work with native error codes",
	}
	errCmd.AddCommand(cmd)
	rootCmd.AddCommand(errCmd)
}

func newErrExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <native-code>",
		Short: "Translate a native error code and render its message",
		Long: `The explain command maps a raw native error code to its canonical
classification and prints the platform's human-readable description.

The generic OS space and the network-subsystem space use distinct
numberings on some platforms; pass --net to interpret the code in the
network space.

Example:
  oskitctl err explain 2
  oskitctl err explain 10061 --net`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runErrExplain(args[0])
		},
	}
}

func runErrExplain(arg string) error {
	native, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return fmt.Errorf("invalid native code %q: %w", arg, err)
	}

	op := iop.New()
	var code oserr.Code
	space := "os"
	if errNet {
		code = oserr.TranslateNet(op, int32(native))
		space = "net"
	} else {
		code = oserr.TranslateOS(op, uint32(native))
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"native":    native,
			"space":     space,
			"canonical": code.String(),
			"message":   op.Message(),
		})
	}

	printInfo("native:    %d (%#x)\n", native, native)
	printInfo("space:     %s\n", space)
	printInfo("canonical: %s\n", code)
	if msg := op.Message(); msg != "" {
		printInfo("message:   %s\n", msg)
	}
	return nil
}
