// Package export exposes the sub-artifacts of a sealed package by name for
// downstream download and conversion tooling: the draft report as plain text,
// and the benchmark and confirmation artifacts as structured JSON. Document
// format conversion itself is out of scope here.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/esgflow/core"
)

// ReportText renders the draft report artifact as plain text: title,
// sections, and the consolidated citation list.
func ReportText(pkg *core.Package) (string, error) {
	art, ok := pkg.FindArtifact(core.StageReportCompiler)
	if !ok {
		return "", fmt.Errorf("package %s has no draft report artifact", pkg.ID)
	}
	draft, err := core.DecodePayload[core.DraftReport](art)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(draft.Title)
	sb.WriteString("\n")
	for i, section := range draft.Sections {
		sb.WriteString(fmt.Sprintf("\n%d. %s\n%s\n", i+1, section.Heading, section.Body))
	}
	if len(art.Citations) > 0 {
		sb.WriteString("\nCitations:\n")
		for _, c := range art.Citations {
			sb.WriteString("- " + c.String() + "\n")
		}
	}
	return sb.String(), nil
}

// MarshalArtifact returns the named stage artifact as indented JSON.
func MarshalArtifact(pkg *core.Package, stage core.StageName) ([]byte, error) {
	art, ok := pkg.FindArtifact(stage)
	if !ok {
		return nil, fmt.Errorf("package %s has no %s artifact", pkg.ID, stage)
	}
	return json.MarshalIndent(art, "", "  ")
}

// MarshalConfirmations returns the package's confirmation list as indented
// JSON, in append order.
func MarshalConfirmations(pkg *core.Package) ([]byte, error) {
	return json.MarshalIndent(pkg.Confirmations, "", "  ")
}
