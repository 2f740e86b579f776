package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/eleven-am/uxlens/internal/analysis"
	"github.com/eleven-am/uxlens/internal/i18n"
)

const (
	pageMargin   = 18.0
	indent       = 6.0
	lineHeight   = 5.5
	headingSize  = 16.0
	itemSize     = 12.0
	bodySize     = 10.0
	footerSize   = 8.0
	detailsRatio = 0.55
)

type rgb struct{ r, g, b int }

var (
	colorText      = rgb{17, 24, 39}
	colorTextLight = rgb{107, 114, 128}
	colorBorder    = rgb{229, 231, 235}
)

var severityColors = map[analysis.Severity]rgb{
	analysis.SeverityCritical: {220, 38, 38},
	analysis.SeverityHigh:     {234, 88, 12},
	analysis.SeverityMedium:   {202, 138, 4},
	analysis.SeverityLow:      {37, 99, 235},
}

// embeddable maps media types to the image types fpdf can place.
var embeddable = map[string]string{
	"image/png":  "PNG",
	"image/jpeg": "JPG",
	"image/gif":  "GIF",
}

// PDF renders the multi-page report: project details, findings grouped by
// severity, then localization advice.
func (r *Renderer) PDF(d Data) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrGeneration, rec)
		}
	}()

	lang := d.Language
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(labels.T(lang, "title", nil), true)
	pdf.SetCreator("uxlens", true)
	pdf.SetCreationDate(r.timestamp(d))
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin + 4)
		pdf.SetFont("Helvetica", "", footerSize)
		setColor(pdf, colorTextLight)
		footer := labels.T(lang, "footer", map[string]string{
			"page":  strconv.Itoa(pdf.PageNo()),
			"total": "{nb}",
		})
		pdf.CellFormat(0, 6, tr(footer), "", 0, "C", false, 0, "")
	})

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	writeDetails(pdf, tr, d, contentWidth)
	writeFindings(pdf, tr, d, contentWidth)
	writeAdvice(pdf, tr, d)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return buf.Bytes(), nil
}

func setColor(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}

func heading(pdf *fpdf.Fpdf, tr func(string) string, text string, c rgb) {
	pdf.SetFont("Helvetica", "B", headingSize)
	setColor(pdf, c)
	pdf.MultiCell(0, 8, tr(text), "", "L", false)
	pdf.Ln(3)
}

func rule(pdf *fpdf.Fpdf) {
	pageWidth, _ := pdf.GetPageSize()
	pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	pdf.SetLineWidth(0.3)
	y := pdf.GetY()
	pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
	pdf.Ln(5)
}

func writeDetails(pdf *fpdf.Fpdf, tr func(string) string, d Data, contentWidth float64) {
	lang := d.Language
	pdf.AddPage()
	heading(pdf, tr, labels.T(lang, "title", nil), colorText)
	rule(pdf)

	top := pdf.GetY()
	columnWidth := contentWidth * detailsRatio

	heading(pdf, tr, labels.T(lang, "details", nil), colorText)

	market := d.MarketName
	if market == "" {
		market = d.MarketCode
	}
	details := [][2]string{
		{labels.T(lang, "screenshot", nil), d.ImageName},
		{labels.T(lang, "target", nil), market},
		{labels.T(lang, "issues", nil), strconv.Itoa(len(d.Findings))},
	}
	if d.Dimensions.Known() {
		details = append(details, [2]string{
			labels.T(lang, "dimensions", nil),
			fmt.Sprintf("%dx%d px", d.Dimensions.Width, d.Dimensions.Height),
		})
	}
	if d.Source != "" {
		details = append(details, [2]string{labels.T(lang, "source", nil), labels.T(lang, "source."+d.Source, nil)})
	}
	details = append(details, [2]string{labels.T(lang, "generated", nil), d.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")})

	for _, kv := range details {
		pdf.SetFont("Helvetica", "B", bodySize)
		setColor(pdf, colorText)
		label := tr(kv[0] + ":")
		labelWidth := pdf.GetStringWidth(label) + 2
		pdf.CellFormat(labelWidth, lineHeight+1, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", bodySize)
		pdf.MultiCell(columnWidth-labelWidth, lineHeight+1, tr(kv[1]), "", "L", false)
		pdf.Ln(1)
	}

	imageType, ok := embeddable[d.ImageType]
	if !ok || len(d.Image) == 0 || !d.Dimensions.Known() {
		return
	}
	opts := fpdf.ImageOptions{ImageType: imageType, ReadDpi: false}
	info := pdf.RegisterImageOptionsReader("screenshot", opts, bytes.NewReader(d.Image))
	if info == nil || pdf.Err() {
		pdf.ClearError()
		return
	}
	x := pageMargin + columnWidth + contentWidth*0.05
	width := contentWidth * 0.40
	height := width * float64(d.Dimensions.Height) / float64(d.Dimensions.Width)
	pdf.ImageOptions("screenshot", x, top, width, height, false, opts, 0, "")
}

func writeFindings(pdf *fpdf.Fpdf, tr func(string) string, d Data, contentWidth float64) {
	if len(d.Findings) == 0 {
		return
	}
	lang := d.Language
	pdf.AddPage()
	heading(pdf, tr, labels.T(lang, "suggestions", nil), colorText)

	for _, group := range analysis.GroupBySeverity(d.Findings) {
		title := fmt.Sprintf("%s (%d)", labels.T(lang, "severity."+string(group.Severity), nil), len(group.Findings))
		heading(pdf, tr, title, severityColors[group.Severity])

		for _, f := range group.Findings {
			pdf.SetX(pageMargin + indent)
			pdf.SetFont("Helvetica", "B", itemSize)
			setColor(pdf, colorText)
			itemTitle := fmt.Sprintf("[%s] %s", labels.T(lang, "category."+string(f.Category), nil), f.Title)
			pdf.MultiCell(contentWidth-indent, 6, tr(itemTitle), "", "L", false)
			pdf.Ln(1)

			field(pdf, tr, labels.T(lang, "description", nil), f.Description, colorTextLight, contentWidth)
			field(pdf, tr, labels.T(lang, "suggestion", nil), f.Suggestion, colorText, contentWidth)
			if f.Impact != "" {
				field(pdf, tr, labels.T(lang, "impact", nil), f.Impact, colorText, contentWidth)
			}
			pdf.Ln(4)
		}
	}
}

func writeAdvice(pdf *fpdf.Fpdf, tr func(string) string, d Data) {
	if len(d.Advice) == 0 {
		return
	}
	lang := d.Language
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	pdf.AddPage()
	heading(pdf, tr, labels.T(lang, "localization", nil), colorText)

	for _, a := range d.Advice {
		pdf.SetX(pageMargin + indent)
		pdf.SetFont("Helvetica", "B", itemSize)
		setColor(pdf, colorText)
		pdf.MultiCell(contentWidth-indent, 6, tr(a.Title), "", "L", false)
		pdf.Ln(1)
		if a.Description != "" {
			field(pdf, tr, labels.T(lang, "description", nil), a.Description, colorTextLight, contentWidth)
		}
		field(pdf, tr, labels.T(lang, "advice", nil), a.Advice, colorText, contentWidth)
		pdf.Ln(4)
	}
}

func field(pdf *fpdf.Fpdf, tr func(string) string, label, value string, c rgb, contentWidth float64) {
	if strings.TrimSpace(value) == "" {
		return
	}
	pdf.SetX(pageMargin + indent)
	pdf.SetFont("Helvetica", "", bodySize)
	setColor(pdf, c)
	pdf.MultiCell(contentWidth-indent, lineHeight, tr(label+": "+value), "", "L", false)
	pdf.Ln(1)
}

var labels = i18n.Catalog{
	i18n.English: {
		"title":                  "UX Analysis Report",
		"details":                "Project Details",
		"screenshot":             "Screenshot",
		"target":                 "Target",
		"issues":                 "Issues Found",
		"dimensions":             "Dimensions",
		"source":                 "Analysis",
		"source.remote":          "Cloud vision",
		"source.local":           "On-device OCR",
		"generated":              "Generated",
		"suggestions":            "Improvement Suggestions",
		"localization":           "Localization Advice",
		"description":            "Description",
		"suggestion":             "Suggestion",
		"impact":                 "Impact",
		"advice":                 "Advice",
		"severity.critical":      "Critical",
		"severity.high":          "High",
		"severity.medium":        "Medium",
		"severity.low":           "Low",
		"category.accessibility": "Accessibility",
		"category.usability":     "Usability",
		"category.design":        "Design",
		"footer":                 "Page {page} of {total}",
	},
	i18n.Spanish: {
		"title":                  "Informe de Análisis UX",
		"details":                "Detalles del Proyecto",
		"screenshot":             "Captura",
		"target":                 "Mercado",
		"issues":                 "Problemas Encontrados",
		"dimensions":             "Dimensiones",
		"source":                 "Análisis",
		"source.remote":          "Visión en la nube",
		"source.local":           "OCR local",
		"generated":              "Generado",
		"suggestions":            "Sugerencias de Mejora",
		"localization":           "Consejos de Localización",
		"description":            "Descripción",
		"suggestion":             "Sugerencia",
		"impact":                 "Impacto",
		"advice":                 "Consejo",
		"severity.critical":      "Crítico",
		"severity.high":          "Alto",
		"severity.medium":        "Medio",
		"severity.low":           "Bajo",
		"category.accessibility": "Accesibilidad",
		"category.usability":     "Usabilidad",
		"category.design":        "Diseño",
		"footer":                 "Página {page} de {total}",
	},
	i18n.Finnish: {
		"title":                  "UX-analyysiraportti",
		"details":                "Projektin Tiedot",
		"screenshot":             "Kuvakaappaus",
		"target":                 "Kohde",
		"issues":                 "Löydetyt Ongelmat",
		"dimensions":             "Mitat",
		"source":                 "Analyysi",
		"source.remote":          "Pilvinäkö",
		"source.local":           "Paikallinen OCR",
		"generated":              "Luotu",
		"suggestions":            "Parannusehdotukset",
		"localization":           "Lokalisointineuvot",
		"description":            "Kuvaus",
		"suggestion":             "Ehdotus",
		"impact":                 "Vaikutus",
		"advice":                 "Neuvo",
		"severity.critical":      "Kriittinen",
		"severity.high":          "Korkea",
		"severity.medium":        "Keskitaso",
		"severity.low":           "Matala",
		"category.accessibility": "Saavutettavuus",
		"category.usability":     "Käytettävyys",
		"category.design":        "Suunnittelu",
		"footer":                 "Sivu {page} / {total}",
	},
}
