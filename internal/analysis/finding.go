package analysis

type Category string

const (
	CategoryAccessibility Category = "accessibility"
	CategoryUsability     Category = "usability"
	CategoryDesign        Category = "design"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists every severity in display order.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

type Coordinates struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Finding struct {
	ID          string       `json:"id"`
	Category    Category     `json:"category"`
	Severity    Severity     `json:"severity"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Suggestion  string       `json:"suggestion"`
	Impact      string       `json:"impact"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Dimensions of the analyzed image. Zero means unknown.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dimensions) Known() bool {
	return d.Width > 0 && d.Height > 0
}

type Group struct {
	Severity Severity  `json:"severity"`
	Findings []Finding `json:"findings"`
}

// GroupBySeverity buckets findings in critical, high, medium, low order,
// skipping empty buckets. Order within a bucket is preserved.
func GroupBySeverity(findings []Finding) []Group {
	groups := make([]Group, 0, len(Severities))
	for _, sev := range Severities {
		var bucket []Finding
		for _, f := range findings {
			if f.Severity == sev {
				bucket = append(bucket, f)
			}
		}
		if len(bucket) > 0 {
			groups = append(groups, Group{Severity: sev, Findings: bucket})
		}
	}
	return groups
}

type Summary struct {
	Total    int `json:"totalIssues"`
	Critical int `json:"criticalIssues"`
	High     int `json:"highPriorityIssues"`
	Medium   int `json:"mediumIssues"`
	Low      int `json:"lowIssues"`
}

func Summarize(findings []Finding) Summary {
	s := Summary{Total: len(findings)}
	for _, f := range findings {
		switch f.Severity {
		case SeverityCritical:
			s.Critical++
		case SeverityHigh:
			s.High++
		case SeverityMedium:
			s.Medium++
		case SeverityLow:
			s.Low++
		}
	}
	return s
}
