package analysis

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/vision"
)

func labels(names ...string) []vision.LabelAnnotation {
	out := make([]vision.LabelAnnotation, 0, len(names))
	for _, n := range names {
		out = append(out, vision.LabelAnnotation{Description: n, Score: vision.Score(0.9)})
	}
	return out
}

func objects(names ...string) []vision.ObjectAnnotation {
	out := make([]vision.ObjectAnnotation, 0, len(names))
	for _, n := range names {
		out = append(out, vision.ObjectAnnotation{Name: n, Description: n})
	}
	return out
}

func ids(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []Finding, want ...string) {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	if !slices.Equal(ids(got), want) {
		t.Fatalf("expected findings %v, got %v", want, ids(got))
	}
}

func assertClass(t *testing.T, f Finding, category Category, severity Severity) {
	t.Helper()
	if f.Category != category || f.Severity != severity {
		t.Errorf("%s: expected %s/%s, got %s/%s", f.ID, category, severity, f.Category, f.Severity)
	}
}

func assertContains(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Errorf("expected %q to contain %q", s, sub)
	}
}

func TestGenerateFindings_EmptyInput(t *testing.T) {
	assertIDs(t, GenerateFindings(vision.Empty(), Dimensions{}, i18n.English))
	if GenerateFindings(nil, Dimensions{}, i18n.English) == nil {
		t.Error("expected a non-nil slice for nil input")
	}
	assertIDs(t, GenerateFindings(nil, Dimensions{Width: 1920, Height: 1080}, i18n.English))
}

func TestLowResolution_Boundary(t *testing.T) {
	got := GenerateFindings(vision.Empty(), Dimensions{Width: 399, Height: 1000}, i18n.English)
	assertIDs(t, got, "low-resolution")
	assertClass(t, got[0], CategoryDesign, SeverityHigh)
	assertContains(t, got[0].Description, "399x1000")

	assertIDs(t, GenerateFindings(vision.Empty(), Dimensions{Width: 400, Height: 1000}, i18n.English))
	assertIDs(t, GenerateFindings(vision.Empty(), Dimensions{Width: 0, Height: 100}, i18n.English))
}

func TestTextContent_WithBoundingBox(t *testing.T) {
	v := &vision.VisionResult{TextAnnotations: []vision.TextAnnotation{
		{Description: "Sign up for free"},
		{Description: "Sign", BoundingPoly: &vision.BoundingPoly{Vertices: []vision.Vertex{
			{X: 20, Y: 40}, {X: 80, Y: 40}, {X: 80, Y: 60}, {X: 20, Y: 60},
		}}},
		{Description: "up"},
		{Description: "for"},
		{Description: "free"},
	}}

	got := GenerateFindings(v, Dimensions{}, i18n.English)
	assertIDs(t, got, "text-content")
	f := got[0]
	assertClass(t, f, CategoryAccessibility, SeverityHigh)
	if want := (Coordinates{X: 20, Y: 40, Width: 60, Height: 20}); f.Coordinates == nil || *f.Coordinates != want {
		t.Errorf("expected coordinates %+v, got %+v", want, f.Coordinates)
	}
	assertContains(t, f.Description, "Sign, up, for")
	if strings.Contains(f.Description, "free)") {
		t.Errorf("only three key words should be cited, got %q", f.Description)
	}
	assertContains(t, f.Description, "x=20, y=40")
}

func TestTextContent_WithoutPolygon(t *testing.T) {
	v := &vision.VisionResult{TextAnnotations: []vision.TextAnnotation{{Description: "Hello"}}}

	got := GenerateFindings(v, Dimensions{}, i18n.English)
	assertIDs(t, got, "text-content")
	if got[0].Coordinates != nil {
		t.Errorf("expected no coordinates, got %+v", got[0].Coordinates)
	}
	if strings.Contains(got[0].Description, "{") {
		t.Errorf("unfilled placeholder in %q", got[0].Description)
	}
}

func TestPerson_ExactlyOnce(t *testing.T) {
	v := &vision.VisionResult{LabelAnnotations: labels("Person", "PERSON", "Salesperson")}

	got := GenerateFindings(v, Dimensions{}, i18n.English)
	assertIDs(t, got, "person-detected")
	assertClass(t, got[0], CategoryUsability, SeverityMedium)
}

func TestDuplicateObjects_OnePerName(t *testing.T) {
	v := &vision.VisionResult{LocalizedObjectAnnotations: objects(
		"Button", "Icon", "Button", "Image", "Icon", "Button", "button",
	)}

	got := GenerateFindings(v, Dimensions{}, i18n.English)
	assertIDs(t, got, "duplicate-object-1", "duplicate-object-2")
	assertContains(t, got[0].Description, "\"Button\" appears 3 times")
	assertContains(t, got[1].Description, "\"Icon\" appears 2 times")
	for _, f := range got {
		assertClass(t, f, CategoryUsability, SeverityLow)
	}
}

func TestDuplicateObjects_NamelessFallsBack(t *testing.T) {
	v := &vision.VisionResult{LocalizedObjectAnnotations: []vision.ObjectAnnotation{{}, {}}}

	got := GenerateFindings(v, Dimensions{}, i18n.English)
	assertIDs(t, got, "duplicate-object-1")
	assertContains(t, got[0].Title, "Object")
}

func TestVisualComplexity_Threshold(t *testing.T) {
	five := &vision.VisionResult{LabelAnnotations: labels("A", "B", "C", "D", "E", "A")}
	assertIDs(t, GenerateFindings(five, Dimensions{}, i18n.English))

	six := &vision.VisionResult{LabelAnnotations: labels("Text", "Font", "Screenshot", "Logo", "Brand", "Design")}
	got := GenerateFindings(six, Dimensions{}, i18n.English)
	assertIDs(t, got, "visual-complexity")
	assertClass(t, got[0], CategoryDesign, SeverityMedium)
	assertContains(t, got[0].Description, "Text, Font, Screenshot, Logo, Brand, Design")
}

func TestGenerateFindings_DetectorOrder(t *testing.T) {
	v := &vision.VisionResult{
		TextAnnotations:            []vision.TextAnnotation{{Description: "Hi"}},
		LabelAnnotations:           labels("Person", "A", "B", "C", "D", "E"),
		LocalizedObjectAnnotations: objects("Card", "Card"),
	}

	got := GenerateFindings(v, Dimensions{Width: 200, Height: 200}, i18n.English)
	assertIDs(t, got, "low-resolution", "text-content", "person-detected", "duplicate-object-1", "visual-complexity")
}

func TestGenerateFindings_Deterministic(t *testing.T) {
	v := &vision.VisionResult{
		TextAnnotations:            []vision.TextAnnotation{{Description: "Total: $45.00"}, {Description: "Total:"}},
		LocalizedObjectAnnotations: objects("A", "B", "A", "B"),
	}
	first := GenerateFindings(v, Dimensions{Width: 100, Height: 100}, i18n.Spanish)
	second := GenerateFindings(v, Dimensions{Width: 100, Height: 100}, i18n.Spanish)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical findings, got %+v and %+v", first, second)
	}
}

func TestGenerateFindings_Localized(t *testing.T) {
	v := &vision.VisionResult{LabelAnnotations: labels("Person")}

	es := GenerateFindings(v, Dimensions{}, i18n.Spanish)
	fi := GenerateFindings(v, Dimensions{}, i18n.Finnish)
	if es[0].Title != "Personas Detectadas en la Interfaz" {
		t.Errorf("unexpected Spanish title %q", es[0].Title)
	}
	if fi[0].Title != "Käyttöliittymässä Havaittu Ihmisiä" {
		t.Errorf("unexpected Finnish title %q", fi[0].Title)
	}
}

func TestMessages_EveryLanguageHasEveryKey(t *testing.T) {
	for _, lang := range i18n.Supported() {
		for key := range messages[i18n.English] {
			v, ok := messages[lang][key]
			if !ok {
				t.Errorf("%s missing %s", lang, key)
				continue
			}
			if strings.TrimSpace(v) == "" {
				t.Errorf("%s has an empty %s", lang, key)
			}
		}
	}
}

func TestGroupBySeverity(t *testing.T) {
	findings := []Finding{
		{ID: "a", Severity: SeverityLow},
		{ID: "b", Severity: SeverityHigh},
		{ID: "c", Severity: SeverityCritical},
		{ID: "d", Severity: SeverityHigh},
	}

	groups := GroupBySeverity(findings)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	order := []Severity{groups[0].Severity, groups[1].Severity, groups[2].Severity}
	if want := []Severity{SeverityCritical, SeverityHigh, SeverityLow}; !slices.Equal(order, want) {
		t.Errorf("expected order %v, got %v", want, order)
	}
	if got := ids(groups[1].Findings); !slices.Equal(got, []string{"b", "d"}) {
		t.Errorf("expected high group [b d], got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Finding{
		{Severity: SeverityCritical},
		{Severity: SeverityHigh},
		{Severity: SeverityHigh},
		{Severity: SeverityLow},
	})
	if want := (Summary{Total: 4, Critical: 1, High: 2, Low: 1}); s != want {
		t.Errorf("expected %+v, got %+v", want, s)
	}
}
