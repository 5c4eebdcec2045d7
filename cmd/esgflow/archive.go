package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := openFlow(*cfgPath)
			if err != nil {
				return err
			}
			defer flow.Close()

			summaries, err := flow.List()
			if err != nil {
				return err
			}
			for _, s := range summaries {
				fmt.Printf("%s  %-8s  %s\n", s.ID, s.Status, s.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newShowCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <package-id>",
		Short: "Print an archived package as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := openFlow(*cfgPath)
			if err != nil {
				return err
			}
			defer flow.Close()

			pkg, err := flow.Get(args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(pkg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
