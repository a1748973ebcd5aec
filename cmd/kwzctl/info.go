package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/kwzverify/pkg/kwz"
)

var infoJSON bool

func init() {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show header metadata (authors, filenames, timestamps)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	cmd.Flags().BoolVar(&infoJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(cmd)
}

func runInfo(args []string) error {
	info, err := kwz.ReadInfo(args[0])
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	if infoJSON {
		out, err := kwz.FormatInfoJSON(info)
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		printInfo("%s", out)
		return nil
	}
	printInfo("%s", kwz.FormatInfoText(info))
	return nil
}
