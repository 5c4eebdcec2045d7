package stage

import (
	"sort"

	"github.com/hupe1980/esgflow/core"
)

// StakeholderAnalysis identifies and prioritises the company's key
// stakeholder groups. It requires only the enterprise input; the group set is
// keyed off the industry sector. Output is fully deterministic.
type StakeholderAnalysis struct {
	BaseStage
	guidelines GuidelineService
}

// NewStakeholderAnalysis constructs the stakeholder analysis stage.
func NewStakeholderAnalysis(guidelines GuidelineService) *StakeholderAnalysis {
	return &StakeholderAnalysis{
		BaseStage:  NewBaseStage(core.StageStakeholderAnalysis, "Identify and prioritise key stakeholder groups."),
		guidelines: guidelines,
	}
}

// Execute implements core.Stage.
func (s *StakeholderAnalysis) Execute(rc *core.RunContext) (core.Artifact, error) {
	groups := defaultGroups(rc.Input)
	entries := make([]core.Stakeholder, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, core.Stakeholder{
			Category:           g.category,
			Description:        g.description,
			Expectations:       expectationsFor(g.category),
			EngagementChannels: channelsFor(g.category),
			Priority:           priorityFor(g.category),
		})
	}
	rankGroups(entries)

	payload := core.StakeholderMap{Groups: entries}
	citations := s.guidelines.Lookup(core.CategoryStakeholderEngagement)
	return core.NewArtifact(core.StageStakeholderAnalysis, "Stakeholder Analysis", payload, citations)
}

type stakeholderGroup struct {
	category    string
	description string
}

func defaultGroups(input core.EnterpriseInput) []stakeholderGroup {
	base := []stakeholderGroup{
		{"Investors", "Shareholders and prospective investors"},
		{"Employees", "Full-time staff, contractors and interns"},
		{"Customers", "Customers and end users of the core business"},
		{"Suppliers", "Key raw material and service suppliers"},
		{"Regulators", "Government bodies, stock exchanges and other supervisory authorities"},
	}
	if industryMatches(input.Industry, "manufactur", "industrial") || industryMatches(input.Description, "manufactur") {
		base = append(base, stakeholderGroup{"Local communities", "Communities and residents around production sites"})
	}
	if industryMatches(input.Industry, "financ", "bank") {
		base = append(base, stakeholderGroup{"Industry associations", "Financial sector self-regulatory and industry bodies"})
	}
	return base
}

func expectationsFor(category string) []string {
	mapping := map[string][]string{
		"Investors": {
			"Transparent sustainability strategy and risk management",
			"Board governance disclosure meeting SSE 2.1",
		},
		"Employees": {
			"Career development and fair compensation",
			"Health and safety safeguards aligned with GRI 403",
		},
		"Customers":             {"Green products and service quality", "Information security and privacy protection"},
		"Suppliers":             {"Responsible procurement policy", "Supply chain carbon transparency"},
		"Regulators":            {"Compliant operations", "Fulfilment of disclosure obligations"},
		"Local communities":     {"Community communication mechanisms", "Minimised environmental impact"},
		"Industry associations": {"Sharing of sector best practice", "Participation in standard setting"},
	}
	if exp, ok := mapping[category]; ok {
		return exp
	}
	return []string{"Ongoing communication and transparent disclosure"}
}

func channelsFor(category string) []string {
	mapping := map[string][]string{
		"Investors":             {"Annual general meeting", "ESG roadshows", "Sustainability report"},
		"Employees":             {"Town halls", "Internal social platform", "Satisfaction surveys"},
		"Customers":             {"Service hotline", "Satisfaction surveys", "Product recall mechanism"},
		"Suppliers":             {"Supplier conference", "Responsible supply chain agreements", "On-site audits"},
		"Regulators":            {"Periodic disclosure filings", "Dedicated briefings"},
		"Local communities":     {"Community open days", "Community hotline", "Environmental monitoring bulletins"},
		"Industry associations": {"Industry forums", "Standards working groups"},
	}
	if ch, ok := mapping[category]; ok {
		return ch
	}
	return []string{"Email updates", "Regular meetings"}
}

func priorityFor(category string) string {
	switch category {
	case "Investors", "Customers", "Employees", "Regulators":
		return "High"
	case "Suppliers", "Local communities":
		return "Medium"
	default:
		return "Low"
	}
}

// rankGroups orders groups High to Low priority, keeping insertion order
// within the same priority.
func rankGroups(groups []core.Stakeholder) {
	rank := map[string]int{"High": 0, "Medium": 1, "Low": 2}
	sort.SliceStable(groups, func(i, j int) bool {
		return rank[groups[i].Priority] < rank[groups[j].Priority]
	})
}
