package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/viant/reslist/locator"
)

func newListCmd(flags *globalFlags, stdout io.Writer) *cobra.Command {
	var fingerprint bool
	cmd := &cobra.Command{
		Use:   "list <path>",
		Short: "Print the locators of everything directly under a logical path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := flags.service(cmd)
			if err != nil {
				return err
			}
			locators, err := svc.List(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("list %v: %w", args[0], err)
			}
			for _, loc := range locators {
				fmt.Fprintln(stdout, loc)
			}
			if fingerprint {
				sum, err := locator.Fingerprint(locators)
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "fingerprint=%d\n", sum)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "print a fingerprint of the listing")
	return cmd
}

func newRootsCmd(flags *globalFlags, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "roots <path>",
		Short: "Print the search roots resolved for a logical path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := flags.service(cmd)
			if err != nil {
				return err
			}
			roots, err := svc.Roots(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, root := range roots {
				fmt.Fprintf(stdout, "%s %s\n", root.Kind, root.URL)
			}
			return nil
		},
	}
}
