package core

// TopicCategory classifies a disclosure topic for guideline lookup. The
// guideline mapping service resolves a category to its SSE / GRI citations;
// an unrecognized category resolves to no citations, which downstream stages
// treat as "no applicable guidance" rather than an error.
type TopicCategory string

const (
	// CategoryGovernance covers board structure, risk management and disclosure.
	CategoryGovernance TopicCategory = "governance"
	// CategoryStakeholderEngagement covers engagement mechanisms and materiality process.
	CategoryStakeholderEngagement TopicCategory = "stakeholder_engagement"
	// CategoryClimate covers emissions, energy and climate transition.
	CategoryClimate TopicCategory = "climate"
	// CategoryWorkforce covers employee development, health and safety.
	CategoryWorkforce TopicCategory = "workforce"
	// CategorySupplyChain covers supplier environmental and social risk.
	CategorySupplyChain TopicCategory = "supply_chain"
	// CategoryCommunity covers community engagement and public welfare.
	CategoryCommunity TopicCategory = "community"
	// CategoryGreenFinance covers ESG investment and green credit. No SSE/GRI
	// clause is mapped for it; dependent checklist entries come out not-applicable.
	CategoryGreenFinance TopicCategory = "green_finance"
	// CategoryCircularEconomy covers resource efficiency and waste. Unmapped,
	// like CategoryGreenFinance.
	CategoryCircularEconomy TopicCategory = "circular_economy"
)

// Stakeholder describes one stakeholder group identified by the analysis stage.
type Stakeholder struct {
	Category           string   `json:"category"`
	Description        string   `json:"description"`
	Expectations       []string `json:"expectations"`
	EngagementChannels []string `json:"engagement_channels"`
	// Priority is the engagement prioritisation: High, Medium or Low.
	Priority string `json:"priority"`
}

// StakeholderMap is the StakeholderAnalysis stage payload: stakeholder groups
// ranked High to Low priority.
type StakeholderMap struct {
	Groups []Stakeholder `json:"groups"`
}

// MaterialTopic is one scored disclosure topic in the materiality matrix.
type MaterialTopic struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    TopicCategory `json:"category"`
	// ImpactScore rates the impact on stakeholders and environment (0-5).
	ImpactScore float64 `json:"impact_score"`
	// RelevanceScore rates the importance for business decisions (0-5).
	RelevanceScore float64 `json:"relevance_score"`
	// Citations are the guideline clauses mapped from the topic category.
	Citations []Citation `json:"citations"`
}

// MaterialityMatrix is the Materiality stage payload: scored topics plus a
// quadrant summary keyed by "<impact> impact / <relevance> relevance" labels.
type MaterialityMatrix struct {
	Topics    []MaterialTopic     `json:"topics"`
	Quadrants map[string][]string `json:"quadrants"`
}

// AlignmentStatus classifies one policy checklist entry.
type AlignmentStatus string

const (
	// AlignmentAligned means existing policy fully covers the topic's clauses.
	AlignmentAligned AlignmentStatus = "aligned"
	// AlignmentGap means policy coverage needs strengthening.
	AlignmentGap AlignmentStatus = "gap"
	// AlignmentNotApplicable means no guideline clause maps to the topic.
	AlignmentNotApplicable AlignmentStatus = "not-applicable"
)

// PolicyCheck is one per-topic entry of the policy alignment checklist.
type PolicyCheck struct {
	Topic      string          `json:"topic"`
	Status     AlignmentStatus `json:"status"`
	Note       string          `json:"note"`
	References []Citation      `json:"references"`
}

// PolicyChecklist is the PolicyBenchmark stage payload.
type PolicyChecklist struct {
	Entries []PolicyCheck `json:"entries"`
	Summary string        `json:"summary"`
}

// PeerPosition holds the comparative positioning notes for one material topic.
type PeerPosition struct {
	Topic string   `json:"topic"`
	Notes []string `json:"notes"`
}

// PeerComparison is the PeerBenchmark stage payload.
type PeerComparison struct {
	Peers     []PeerInput    `json:"peers"`
	Positions []PeerPosition `json:"positions"`
	Summary   string         `json:"summary"`
}

// ReportSection is one titled section of the draft report.
type ReportSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// DraftReport is the ReportCompiler stage payload: the narrative draft
// assembled section by section. The consolidated citation list lives on the
// artifact, not the payload.
type DraftReport struct {
	Title    string          `json:"title"`
	Sections []ReportSection `json:"sections"`
}
