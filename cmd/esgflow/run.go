package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/esgflow/core"
)

func newRunCmd(cfgPath *string) *cobra.Command {
	var (
		name        string
		industry    string
		region      string
		period      string
		description string
		strategy    string
		peers       []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the report generation pipeline and archive the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := core.EnterpriseInput{
				Name:            name,
				Industry:        industry,
				Region:          region,
				ReportingPeriod: period,
				Description:     description,
				StrategyFocus:   strategy,
			}
			for _, p := range peers {
				peer, err := parsePeer(p)
				if err != nil {
					return err
				}
				input.Peers = append(input.Peers, peer)
			}

			flow, err := openFlow(*cfgPath)
			if err != nil {
				return err
			}
			defer flow.Close()

			pkg, err := flow.Run(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Printf("package: %s\nstatus: %s\n", pkg.ID, pkg.Status)
			if pkg.Status == core.StatusPartial {
				fmt.Printf("failed stage: %s\nreason: %s\n", pkg.FailedStage, pkg.FailureReason)
			}
			for _, a := range pkg.Artifacts {
				fmt.Printf("artifact: %s (%s)\n", a.Title, a.Stage)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	cmd.Flags().StringVar(&industry, "industry", "", "industry sector (required)")
	cmd.Flags().StringVar(&region, "region", "", "headquarters or listing region")
	cmd.Flags().StringVar(&period, "period", "", "reporting period, e.g. 2024 (required)")
	cmd.Flags().StringVar(&description, "description", "", "free-text company context")
	cmd.Flags().StringVar(&strategy, "strategy", "", "sustainability strategy focus")
	cmd.Flags().StringArrayVar(&peers, "peer", nil, "peer company as name=focus (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("industry")
	_ = cmd.MarkFlagRequired("period")

	return cmd
}

func parsePeer(s string) (core.PeerInput, error) {
	name, focus, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return core.PeerInput{}, fmt.Errorf("invalid --peer %q, want name=focus", s)
	}
	return core.PeerInput{Name: name, Focus: focus}, nil
}
