package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "intfmt",
		Short:         "Decimal integer formatting and parsing at fixed widths",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(newFormatCmd(), newParseCmd())
	return rootCmd
}

func newFormatCmd() *cobra.Command {
	var bits int
	var unsigned bool
	formatCmd := &cobra.Command{
		Use:   "format <value>",
		Short: "Render a value through a width-bounded buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := convert(bits, unsigned, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (%d of %d bytes)\n", res.Text, res.Len, res.Bound)
			return nil
		},
	}
	formatCmd.Flags().IntVar(&bits, "bits", 64, "integer width: 8, 16, 32 or 64")
	formatCmd.Flags().BoolVar(&unsigned, "unsigned", false, "treat the value as unsigned")
	return formatCmd
}

func newParseCmd() *cobra.Command {
	var bits int
	var unsigned bool
	parseCmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Validate and decode a decimal literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := convert(bits, unsigned, args[0])
			if err != nil {
				return err
			}
			fmt.Println(res.Text)
			return nil
		},
	}
	parseCmd.Flags().IntVar(&bits, "bits", 64, "integer width: 8, 16, 32 or 64")
	parseCmd.Flags().BoolVar(&unsigned, "unsigned", false, "treat the value as unsigned")
	return parseCmd
}
