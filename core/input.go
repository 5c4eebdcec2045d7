package core

import "fmt"

// PeerInput describes one comparison company supplied by the caller for the
// peer benchmarking stage. When no peers are supplied the stage falls back to
// an industry default set.
type PeerInput struct {
	// Name is the public name of the peer company.
	Name string `json:"name"`
	// Focus is the disclosure theme the peer is known for (e.g. "green credit").
	Focus string `json:"focus"`
}

// EnterpriseInput is the immutable per-run description of the reporting
// company. It is supplied once by the caller and never mutated; the workflow
// engine owns it for the duration of a single run.
type EnterpriseInput struct {
	// Name is the public name of the reporting company.
	Name string `json:"name"`
	// Industry is the sector classification (e.g. "Manufacturing", "Finance").
	// Several stages key their default content off this field.
	Industry string `json:"industry"`
	// Region is the optional headquarters or listing region.
	Region string `json:"region,omitempty"`
	// ReportingPeriod identifies the period the draft report covers (e.g. "2024").
	ReportingPeriod string `json:"reporting_period"`
	// Description is free-text company context carried into the draft report.
	Description string `json:"description,omitempty"`
	// StrategyFocus is an optional statement of sustainability strategy priorities.
	StrategyFocus string `json:"strategy_focus,omitempty"`
	// Peers optionally overrides the peer set used by the peer benchmarking stage.
	Peers []PeerInput `json:"peers,omitempty"`
}

// Validate checks that the mandatory identity fields are present.
func (in EnterpriseInput) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("enterprise input: name is required")
	}
	if in.Industry == "" {
		return fmt.Errorf("enterprise input: industry is required")
	}
	if in.ReportingPeriod == "" {
		return fmt.Errorf("enterprise input: reporting period is required")
	}
	for i, p := range in.Peers {
		if p.Name == "" {
			return fmt.Errorf("enterprise input: peer %d has no name", i)
		}
	}
	return nil
}
