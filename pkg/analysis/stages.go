package analysis

import (
	"fmt"
	"strings"
)

// Stage is a bit in the set of optional analysis stages
type Stage uint8

const (
	StageKeyPhrases Stage = 1 << iota
	StageSentiment
	StageEntities
	StageSummary
	StageCharCount
)

const (
	// MinimalSurface reports counts, key phrases, sentiment and character count
	MinimalSurface = StageKeyPhrases | StageSentiment | StageCharCount
	// RichSurface adds entities and summary and leaves out character count
	RichSurface = StageKeyPhrases | StageSentiment | StageEntities | StageSummary
	// AllStages enables every stage
	AllStages = RichSurface | StageCharCount
)

var stageNames = []struct {
	stage Stage
	name  string
}{
	{StageKeyPhrases, "keyPhrases"},
	{StageSentiment, "sentiment"},
	{StageEntities, "entities"},
	{StageSummary, "summary"},
	{StageCharCount, "characterCount"},
}

// Has reports whether every bit of other is set in s
func (s Stage) Has(other Stage) bool {
	return s&other == other
}

// String returns the stage names joined by commas
func (s Stage) String() string {
	names := s.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Names returns the names of the set bits in a stable order
func (s Stage) Names() []string {
	names := make([]string, 0, len(stageNames))
	for _, sn := range stageNames {
		if s.Has(sn.stage) {
			names = append(names, sn.name)
		}
	}
	return names
}

// ParseSurface maps "minimal" / "rich" / "all" to a stage set
func ParseSurface(name string) (Stage, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimal":
		return MinimalSurface, nil
	case "", "rich":
		return RichSurface, nil
	case "all":
		return AllStages, nil
	}
	return 0, fmt.Errorf("unknown analysis surface %q", name)
}

// ParseStages parses a comma separated list of stage names
func ParseStages(list string) (Stage, error) {
	var set Stage
	for _, raw := range strings.Split(list, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		found := false
		for _, sn := range stageNames {
			if strings.EqualFold(sn.name, name) {
				set |= sn.stage
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown analysis stage %q", name)
		}
	}
	return set, nil
}
