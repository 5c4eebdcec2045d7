package stage

import "github.com/hupe1980/esgflow/core"

// Quadrant labels used in the materiality matrix summary.
const (
	quadrantHighHigh = "high impact / high relevance"
	quadrantHighMed  = "high impact / medium relevance"
	quadrantMedHigh  = "medium impact / high relevance"
	quadrantMedMed   = "medium impact / medium relevance"
)

// Materiality builds the materiality matrix: disclosure topics scored by
// stakeholder impact and business relevance, each annotated with the
// guideline citations mapped from its category. It consumes the stakeholder
// analysis artifact. Output is fully deterministic.
type Materiality struct {
	BaseStage
	guidelines GuidelineService
}

// NewMateriality constructs the materiality stage.
func NewMateriality(guidelines GuidelineService) *Materiality {
	return &Materiality{
		BaseStage: NewBaseStage(core.StageMateriality,
			"Build the materiality matrix from stakeholder and business impact criteria.",
			core.StageStakeholderAnalysis),
		guidelines: guidelines,
	}
}

// Execute implements core.Stage.
func (m *Materiality) Execute(rc *core.RunContext) (core.Artifact, error) {
	smap, err := dependencyPayload[core.StakeholderMap](rc, core.StageMateriality, core.StageStakeholderAnalysis)
	if err != nil {
		return core.Artifact{}, err
	}

	topics := m.suggestTopics(rc.Input, smap)
	matrix := core.MaterialityMatrix{
		Topics:    topics,
		Quadrants: buildQuadrants(topics),
	}

	lists := make([][]core.Citation, len(topics))
	for i, t := range topics {
		lists[i] = t.Citations
	}
	return core.NewArtifact(core.StageMateriality, "Materiality Matrix", matrix, core.MergeCitations(lists...))
}

type topicSeed struct {
	name        string
	description string
	category    core.TopicCategory
	impact      float64
	relevance   float64
}

func (m *Materiality) suggestTopics(input core.EnterpriseInput, smap core.StakeholderMap) []core.MaterialTopic {
	seeds := []topicSeed{
		{"Corporate governance and compliance", "Board structure, risk management and disclosure", core.CategoryGovernance, 4.5, 5.0},
		{"Climate change and carbon management", "Emission reduction targets, energy mix and climate risk response", core.CategoryClimate, 4.7, 4.3},
		{"Employee development and safety", "Training, career development and health and safety safeguards", core.CategoryWorkforce, 4.0, 4.5},
		{"Responsible supply chain", "Supplier management and supply chain ESG risk assessment", core.CategorySupplyChain, 3.8, 4.2},
		{"Community engagement and social contribution", "Public welfare investment and community communication", core.CategoryCommunity, 3.5, 3.9},
	}
	if industryMatches(input.Industry, "financ", "bank") {
		seeds = append(seeds, topicSeed{"Green finance and responsible investment", "ESG investment strategy, green credit and risk screening", core.CategoryGreenFinance, 4.2, 4.6})
	}
	if industryMatches(input.Industry, "manufactur", "industrial") {
		seeds = append(seeds, topicSeed{"Clean production and circular economy", "Energy saving, waste management and resource recovery", core.CategoryCircularEconomy, 4.3, 4.1})
	}

	// Community relevance rises when the stakeholder analysis surfaced a
	// local community group.
	if hasGroup(smap, "Local communities") {
		for i := range seeds {
			if seeds[i].category == core.CategoryCommunity {
				seeds[i].relevance += 0.2
			}
		}
	}

	topics := make([]core.MaterialTopic, 0, len(seeds))
	for _, s := range seeds {
		topics = append(topics, core.MaterialTopic{
			Name:           s.name,
			Description:    s.description,
			Category:       s.category,
			ImpactScore:    s.impact,
			RelevanceScore: s.relevance,
			Citations:      m.guidelines.Lookup(s.category),
		})
	}
	return topics
}

func hasGroup(smap core.StakeholderMap, category string) bool {
	for _, g := range smap.Groups {
		if g.Category == category {
			return true
		}
	}
	return false
}

func buildQuadrants(topics []core.MaterialTopic) map[string][]string {
	quadrants := map[string][]string{
		quadrantHighHigh: {},
		quadrantHighMed:  {},
		quadrantMedHigh:  {},
		quadrantMedMed:   {},
	}
	for _, t := range topics {
		switch {
		case t.ImpactScore >= 4 && t.RelevanceScore >= 4:
			quadrants[quadrantHighHigh] = append(quadrants[quadrantHighHigh], t.Name)
		case t.ImpactScore >= 4:
			quadrants[quadrantHighMed] = append(quadrants[quadrantHighMed], t.Name)
		case t.RelevanceScore >= 4:
			quadrants[quadrantMedHigh] = append(quadrants[quadrantMedHigh], t.Name)
		default:
			quadrants[quadrantMedMed] = append(quadrants[quadrantMedMed], t.Name)
		}
	}
	return quadrants
}
