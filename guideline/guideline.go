// Package guideline provides the pure mapping from disclosure topic
// categories to the SSE sustainability disclosure guide and GRI standard
// clauses that govern them. Lookups are referentially transparent and have no
// failure modes: an unrecognized category resolves to an empty citation list,
// which downstream stages treat as "no applicable guidance".
package guideline

import "github.com/hupe1980/esgflow/core"

// Clause identifiers for the SSE disclosure guide.
var (
	sseGovernance = core.Citation{Source: core.SourceDisclosureGuide, Clause: "2.1", Text: "Board responsibilities for sustainability oversight"}
	sseEngagement = core.Citation{Source: core.SourceDisclosureGuide, Clause: "4.2", Text: "Mechanisms for engagement with key stakeholder groups"}
	sseClimate    = core.Citation{Source: core.SourceDisclosureGuide, Clause: "5.3", Text: "Disclosure of climate transition plans and targets"}
	sseSupply     = core.Citation{Source: core.SourceDisclosureGuide, Clause: "6.1", Text: "Supply chain environmental and social risk management"}
	sseCommunity  = core.Citation{Source: core.SourceDisclosureGuide, Clause: "7.4", Text: "Community engagement and public welfare initiatives"}
)

// Clause identifiers for the GRI standards.
var (
	griGovernance  = core.Citation{Source: core.SourceGRI, Clause: "2-9", Text: "Governance structure and composition"}
	griMateriality = core.Citation{Source: core.SourceGRI, Clause: "3-1", Text: "Process to determine material topics"}
	griEmissions   = core.Citation{Source: core.SourceGRI, Clause: "305", Text: "Emissions-related disclosures"}
	griSafety      = core.Citation{Source: core.SourceGRI, Clause: "403", Text: "Occupational health and safety"}
	griCommunity   = core.Citation{Source: core.SourceGRI, Clause: "413", Text: "Local communities"}
)

// mappings pairs each known topic category with its citations, SSE clauses
// before GRI clauses. Categories without an entry (green finance, circular
// economy) have no mapped guidance.
var mappings = map[core.TopicCategory][]core.Citation{
	core.CategoryGovernance:            {sseGovernance, griGovernance},
	core.CategoryStakeholderEngagement: {sseEngagement, griMateriality},
	core.CategoryClimate:               {sseClimate, griEmissions},
	core.CategoryWorkforce:             {griSafety},
	core.CategorySupplyChain:           {sseSupply},
	core.CategoryCommunity:             {sseCommunity, griCommunity},
}

// Service resolves topic categories to citations. It is stateless and safe
// for concurrent use.
type Service struct{}

// NewService returns the guideline mapping service.
func NewService() *Service { return &Service{} }

// Lookup returns the ordered citations for a topic category. The result is a
// fresh slice the caller may keep; it is empty (never nil) for categories
// without mapped guidance.
func (s *Service) Lookup(category core.TopicCategory) []core.Citation {
	refs, ok := mappings[category]
	if !ok {
		return []core.Citation{}
	}
	return append([]core.Citation{}, refs...)
}
