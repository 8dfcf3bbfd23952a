// Command texide tokenizes and expands a TeX-like source file, printing
// one line per fully expanded token.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.texide.dev/pkg"
)

func newRootCmd() *cobra.Command {
	driver := texide.NewDriver()

	cmd := &cobra.Command{
		Use:           "texide <file>",
		Short:         "Tokenize and expand a TeX-like source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := driver.Run(args[0], cmd.OutOrStdout()); err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), texide.RenderError(err))
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&driver.ParName, "par-name", "par", "control sequence name synthesized for a paragraph break")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
