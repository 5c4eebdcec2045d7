package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/esgflow/core"
)

func newConfirmCmd(cfgPath *string) *cobra.Command {
	var (
		section string
		ack     bool
		comment string
	)

	cmd := &cobra.Command{
		Use:   "confirm <package-id>",
		Short: "Record a reviewer confirmation against a package section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := openFlow(*cfgPath)
			if err != nil {
				return err
			}
			defer flow.Close()

			entry := core.NewConfirmationEntry(section, ack, comment)
			if err := flow.Confirm(args[0], entry); err != nil {
				return err
			}
			fmt.Printf("confirmation %s recorded for section %q\n", entry.ID, section)
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "target section: stage name, artifact title or report heading (required)")
	cmd.Flags().BoolVar(&ack, "ack", false, "mark the section as acknowledged")
	cmd.Flags().StringVar(&comment, "comment", "", "optional reviewer comment")
	_ = cmd.MarkFlagRequired("section")

	return cmd
}
