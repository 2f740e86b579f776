package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/vision"
)

const (
	minDimension       = 400
	maxDistinctLabels  = 5
	maxKeyWords        = 3
	defaultObjectLabel = "Object"
)

// Input is the immutable data every detector reads.
type Input struct {
	Vision     *vision.VisionResult
	Dimensions Dimensions
	Language   i18n.Language
}

// Detector inspects the input and returns zero or more findings.
type Detector func(Input) []Finding

// Detectors run in this order; their output is concatenated.
var Detectors = []Detector{
	detectLowResolution,
	detectTextContent,
	detectPerson,
	detectDuplicateObjects,
	detectVisualComplexity,
}

// GenerateFindings runs every detector over v. A nil result is treated as empty.
func GenerateFindings(v *vision.VisionResult, dims Dimensions, lang i18n.Language) []Finding {
	in := Input{
		Vision:     vision.NormalizeResult(v),
		Dimensions: dims,
		Language:   lang,
	}

	findings := []Finding{}
	for _, detect := range Detectors {
		findings = append(findings, detect(in)...)
	}
	return findings
}

func msg(lang i18n.Language, key string, params map[string]string) string {
	return messages.T(lang, key, params)
}

func detectLowResolution(in Input) []Finding {
	d := in.Dimensions
	if !d.Known() || (d.Width >= minDimension && d.Height >= minDimension) {
		return nil
	}
	params := map[string]string{
		"width":  strconv.Itoa(d.Width),
		"height": strconv.Itoa(d.Height),
	}
	return []Finding{{
		ID:          "low-resolution",
		Category:    CategoryDesign,
		Severity:    SeverityHigh,
		Title:       msg(in.Language, "lowres.title", params),
		Description: msg(in.Language, "lowres.description", params),
		Suggestion:  msg(in.Language, "lowres.suggestion", params),
		Impact:      msg(in.Language, "lowres.impact", params),
	}}
}

func detectTextContent(in Input) []Finding {
	texts := in.Vision.TextAnnotations
	if len(texts) == 0 {
		return nil
	}

	keywords := make([]string, 0, maxKeyWords)
	for _, ta := range texts[1:min(len(texts), maxKeyWords+1)] {
		keywords = append(keywords, ta.Description)
	}

	params := map[string]string{
		"text":     strings.TrimSpace(texts[0].Description),
		"keywords": strings.Join(keywords, ", "),
	}

	f := Finding{
		ID:       "text-content",
		Category: CategoryAccessibility,
		Severity: SeverityHigh,
	}

	descKey := "text.description"
	if len(texts) > 1 {
		if x, y, w, h, ok := texts[1].BoundingPoly.Bounds(); ok {
			f.Coordinates = &Coordinates{X: x, Y: y, Width: w, Height: h}
			params["x"] = strconv.Itoa(x)
			params["y"] = strconv.Itoa(y)
			params["w"] = strconv.Itoa(w)
			params["h"] = strconv.Itoa(h)
			descKey = "text.description_box"
		}
	}

	f.Title = msg(in.Language, "text.title", params)
	f.Description = msg(in.Language, descKey, params)
	f.Suggestion = msg(in.Language, "text.suggestion", params)
	f.Impact = msg(in.Language, "text.impact", params)
	return []Finding{f}
}

func detectPerson(in Input) []Finding {
	for _, l := range in.Vision.LabelAnnotations {
		if strings.Contains(strings.ToLower(l.Description), "person") {
			return []Finding{{
				ID:          "person-detected",
				Category:    CategoryUsability,
				Severity:    SeverityMedium,
				Title:       msg(in.Language, "person.title", nil),
				Description: msg(in.Language, "person.description", nil),
				Suggestion:  msg(in.Language, "person.suggestion", nil),
				Impact:      msg(in.Language, "person.impact", nil),
			}}
		}
	}
	return nil
}

func objectName(o vision.ObjectAnnotation) string {
	switch {
	case o.Name != "":
		return o.Name
	case o.Description != "":
		return o.Description
	}
	return defaultObjectLabel
}

func detectDuplicateObjects(in Input) []Finding {
	counts := make(map[string]int)
	var order []string
	for _, o := range in.Vision.LocalizedObjectAnnotations {
		name := objectName(o)
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	var findings []Finding
	for _, name := range order {
		if counts[name] < 2 {
			continue
		}
		params := map[string]string{
			"name":  name,
			"count": strconv.Itoa(counts[name]),
		}
		findings = append(findings, Finding{
			ID:          fmt.Sprintf("duplicate-object-%d", len(findings)+1),
			Category:    CategoryUsability,
			Severity:    SeverityLow,
			Title:       msg(in.Language, "duplicate.title", params),
			Description: msg(in.Language, "duplicate.description", params),
			Suggestion:  msg(in.Language, "duplicate.suggestion", params),
			Impact:      msg(in.Language, "duplicate.impact", params),
		})
	}
	return findings
}

func detectVisualComplexity(in Input) []Finding {
	seen := make(map[string]struct{})
	var names []string
	for _, l := range in.Vision.LabelAnnotations {
		if _, ok := seen[l.Description]; ok {
			continue
		}
		seen[l.Description] = struct{}{}
		names = append(names, l.Description)
	}
	if len(names) <= maxDistinctLabels {
		return nil
	}

	params := map[string]string{"labels": strings.Join(names, ", ")}
	return []Finding{{
		ID:          "visual-complexity",
		Category:    CategoryDesign,
		Severity:    SeverityMedium,
		Title:       msg(in.Language, "complexity.title", params),
		Description: msg(in.Language, "complexity.description", params),
		Suggestion:  msg(in.Language, "complexity.suggestion", params),
		Impact:      msg(in.Language, "complexity.impact", params),
	}}
}
