package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/export"
)

func newExportCmd(cfgPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <package-id> <artifact>",
		Short: "Export a package sub-artifact (report, policy-benchmark, peer-benchmark, confirmations)",
		Args:  cobra.ExactArgs(2),
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

			var data []byte
			switch args[1] {
			case "report":
				text, err := export.ReportText(pkg)
				if err != nil {
					return err
				}
				data = []byte(text)
			case "policy-benchmark":
				data, err = export.MarshalArtifact(pkg, core.StagePolicyBenchmark)
			case "peer-benchmark":
				data, err = export.MarshalArtifact(pkg, core.StagePeerBenchmark)
			case "confirmations":
				data, err = export.MarshalConfirmations(pkg)
			default:
				return fmt.Errorf("unknown artifact %q, want report, policy-benchmark, peer-benchmark or confirmations", args[1])
			}
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Println(string(data))
				return nil
			}
			return os.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")
	return cmd
}
