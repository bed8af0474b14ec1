// Package secrets scans text scheduled for removal with gitleaks. Debug
// statements are a common place for credentials to leak, so the clean command
// can warn when the text it is about to delete contains one.
package secrets

import (
	"fmt"

	"github.com/zricethezav/gitleaks/v8/detect"
)

// Finding is one secret detected in a fragment of removed text.
type Finding struct {
	RuleID      string
	Description string
}

// Scanner wraps a gitleaks detector configured with the default rule set.
type Scanner struct {
	detector *detect.Detector
}

// NewScanner builds a scanner with the gitleaks default configuration.
func NewScanner() (*Scanner, error) {
	detector, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load gitleaks rules: %w", err)
	}
	return &Scanner{detector: detector}, nil
}

// Scan runs the detector over fragment and reports any secrets found.
func (s *Scanner) Scan(fragment string) []Finding {
	results := s.detector.DetectString(fragment)
	findings := make([]Finding, 0, len(results))
	for _, r := range results {
		findings = append(findings, Finding{RuleID: r.RuleID, Description: r.Description})
	}
	return findings
}
