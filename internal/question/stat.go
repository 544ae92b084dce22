package question

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Timeframe is the aggregation granularity of a stat threshold.
type Timeframe string

const (
	TimeframeSeason Timeframe = "Season"
	TimeframeCareer Timeframe = "Career"
)

// StatSpec is a single classified stat threshold. Column is empty for
// formula stats, in which case Formula carries the aggregate expression.
type StatSpec struct {
	Name      string
	Column    string
	Formula   string
	Op        string
	Table     string
	Timeframe Timeframe
	Value     float64
}

// CompoundStatSpec is two thresholds that must hold within the same
// aggregation row (same table, same timeframe).
type CompoundStatSpec struct {
	Table     string
	Timeframe Timeframe
	First     CompoundPart
	Second    CompoundPart
}

// CompoundPart is one half of a compound stat. Compound thresholds are
// always sum-over-column with >=.
type CompoundPart struct {
	Name   string
	Column string
	Value  float64
}

// StatCondition is the result of stat classification: exactly one of Single
// or Compound is set.
type StatCondition struct {
	Single   *StatSpec
	Compound *CompoundStatSpec
}

// Timeframe returns the condition's aggregation granularity.
func (s *StatCondition) Timeframe() Timeframe {
	if s.Compound != nil {
		return s.Compound.Timeframe
	}
	return s.Single.Timeframe
}

// Stat grammar. The compound form is tried first; the single form allows an
// optional leading decimal marker and an optional trailing "+".
var (
	reCoarseStat   = regexp.MustCompile(`(?i)Season|Career`)
	reCompoundStat = regexp.MustCompile(`(?i)(\d+)\+\s([A-Za-z]+)\s/\s(\d+)\+\s([A-Za-z]+)\s(Season|Career)\s?(Batting|Pitching)?`)
	reSingleStat   = regexp.MustCompile(`(?i)\b(<?\.?\d+(?:\.\d+)?)(\+)?\s([A-Za-z]+)\s(Season|Career)\b`)
)

// coarseStat is phase A of stat classification: does the condition mention a
// timeframe at all. Conditions that pass here can still fail full
// extraction (unknown stat name); that is a lookup miss, not a stat.
func coarseStat(cond string) bool {
	return reCoarseStat.MatchString(cond)
}

// stat classifies a condition as a stat threshold. Phase A is the coarse
// timeframe check; phase B runs the shared grammar against the stat table.
func (c *classifiers) stat(cond string) (*StatCondition, bool) {
	if !coarseStat(cond) {
		return nil, false
	}

	if m := reCompoundStat.FindStringSubmatch(cond); m != nil {
		if compound, ok := c.compoundStat(m); ok {
			return &StatCondition{Compound: compound}, true
		}
		return nil, false
	}

	m := reSingleStat.FindStringSubmatch(cond)
	if m == nil {
		return nil, false
	}
	value, err := parseThreshold(m[1], cond)
	if err != nil {
		return nil, false
	}
	name := strings.ToUpper(strings.TrimSpace(m[3]))
	def, ok := c.tables.Stats[name]
	if !ok {
		return nil, false
	}
	tf := normalizeTimeframe(m[4])
	return &StatCondition{Single: &StatSpec{
		Name:      name,
		Column:    def.Column,
		Formula:   def.Formula,
		Op:        string(def.Op),
		Table:     def.Table,
		Timeframe: tf,
		Value:     value,
	}}, true
}

func (c *classifiers) compoundStat(m []string) (*CompoundStatSpec, bool) {
	name1 := strings.ToUpper(strings.TrimSpace(m[2]))
	name2 := strings.ToUpper(strings.TrimSpace(m[4]))
	def1, ok1 := c.tables.Stats[name1]
	def2, ok2 := c.tables.Stats[name2]
	if !ok1 || !ok2 {
		return nil, false
	}
	// Both halves aggregate within one grouping: they must share a source
	// table and be plain column sums (formula stats cannot compound).
	if def1.Table != def2.Table || def1.Column == "" || def2.Column == "" {
		return nil, false
	}
	v1, err1 := strconv.ParseFloat(m[1], 64)
	v2, err2 := strconv.ParseFloat(m[3], 64)
	if err1 != nil || err2 != nil {
		return nil, false
	}
	return &CompoundStatSpec{
		Table:     def1.Table,
		Timeframe: normalizeTimeframe(m[5]),
		First:     CompoundPart{Name: name1, Column: def1.Column, Value: v1},
		Second:    CompoundPart{Name: name2, Column: def2.Column, Value: v2},
	}, true
}

// parseThreshold parses a captured numeric literal. When the condition
// itself begins with "." the literal is a compact decimal: N captured
// digits mean value / 10^N, so ".300" is 0.300 regardless of digit count.
func parseThreshold(raw, cond string) (float64, error) {
	raw = strings.TrimPrefix(raw, "<")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if strings.HasPrefix(cond, ".") {
		v /= math.Pow10(len(raw))
	}
	return v, nil
}

func normalizeTimeframe(s string) Timeframe {
	if strings.EqualFold(s, string(TimeframeSeason)) {
		return TimeframeSeason
	}
	return TimeframeCareer
}
