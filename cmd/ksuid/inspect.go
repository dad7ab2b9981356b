package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sxyafiq/ksuid"
)

func newInspectCmd(opts *cliOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <ksuid>...",
		Short: "Show the components of KSUIDs",
		Example: `  ksuid inspect 0ujtsYcgvSTl8PAuAdqWYSMnLOv
  ksuid inspect -f time 0ujtsYcgvSTl8PAuAdqWYSMnLOv 1srOrx2ZWZBpBUvZwXKQmoEYga2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			for i, arg := range args {
				id, err := ksuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				s, err := formatID(id, format)
				if err != nil {
					return err
				}
				if format == "inspect" && i > 0 {
					fmt.Fprintln(opts.out)
				}
				fmt.Fprintln(opts.out, s)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "inspect", "Output format: string, inspect, time, timestamp, payload, raw, json")
	return cmd
}

// errInvalidIDs reports that validate found at least one bad input.
var errInvalidIDs = errors.New("one or more KSUIDs are invalid")

func newValidateCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <ksuid>...",
		Short: "Check that KSUIDs parse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, arg := range args {
				if _, err := ksuid.Parse(arg); err != nil {
					bad++
					fmt.Fprintf(opts.out, "%s\tinvalid: %v\n", arg, err)
					opts.logger.Debug("rejected ksuid", "input", arg, "error", err)
					continue
				}
				fmt.Fprintf(opts.out, "%s\tvalid\n", arg)
			}
			if bad > 0 {
				return errInvalidIDs
			}
			return nil
		},
	}
}
