package inspection

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eleven-am/uxlens/internal/analysis"
	"github.com/eleven-am/uxlens/internal/dto"
	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/report"
	"github.com/eleven-am/uxlens/internal/rules"
	"github.com/eleven-am/uxlens/internal/shared"
	"github.com/eleven-am/uxlens/internal/vision"
)

type Handler struct {
	service  *Service
	rules    *rules.Store
	renderer *report.Renderer
	logger   *slog.Logger
}

func NewHandler(service *Service, ruleStore *rules.Store, renderer *report.Renderer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service:  service,
		rules:    ruleStore,
		renderer: renderer,
		logger:   logger.With("handler", "inspection"),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/analyses", h.Analyze)
	g.POST("/analyses/upload", h.Upload)
	g.GET("/sessions/:id/report", h.Report)
	g.GET("/markets", h.Markets)
}

// @Summary      Analyze a screenshot
// @Description  Runs vision detection on a base64 encoded screenshot and returns UX findings and localization advice
// @Tags         analyses
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalyzeRequest  true  "Screenshot to analyze"
// @Success      200      {object}  dto.AnalysisResponse
// @Failure      400      {object}  shared.APIError
// @Failure      409      {object}  shared.APIError
// @Failure      413      {object}  shared.APIError
// @Failure      502      {object}  shared.APIError
// @Router       /analyses [post]
func (h *Handler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}
	if req.Image == "" {
		return shared.BadRequest("invalid_request", "image is required")
	}

	r, err := h.service.Analyze(c.Request().Context(), Request{
		SessionID:   req.SessionID,
		ImageBase64: req.Image,
		ImageName:   req.ImageName,
		Language:    req.Language,
		Market:      req.Market,
		Width:       req.Width,
		Height:      req.Height,
	})
	if err != nil {
		return h.analysisError(err, req.Language)
	}
	return c.JSON(http.StatusOK, reportToResponse(r))
}

// @Summary      Upload a screenshot
// @Description  Multipart variant of the analyze endpoint
// @Tags         analyses
// @Accept       multipart/form-data
// @Produce      json
// @Param        file        formData  file    true   "Screenshot (JPEG, PNG, GIF or WebP)"
// @Param        session_id  formData  string  false  "Session identifier"
// @Param        language    formData  string  false  "Output language (en, es, fi)"
// @Param        market      formData  string  false  "Target market code"
// @Success      200         {object}  dto.AnalysisResponse
// @Failure      400         {object}  shared.APIError
// @Failure      409         {object}  shared.APIError
// @Failure      413         {object}  shared.APIError
// @Failure      502         {object}  shared.APIError
// @Router       /analyses/upload [post]
func (h *Handler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return shared.BadRequest("invalid_request", "file is required")
	}
	if fh.Size > h.service.cfg.MaxUploadBytes {
		return h.analysisError(&SizeError{Size: fh.Size, Limit: h.service.cfg.MaxUploadBytes}, c.FormValue("language"))
	}

	f, err := fh.Open()
	if err != nil {
		return shared.BadRequest("invalid_request", "could not read upload")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.service.cfg.MaxUploadBytes+1))
	if err != nil {
		return shared.BadRequest("invalid_request", "could not read upload")
	}

	lang := c.FormValue("language")
	r, err := h.service.Analyze(c.Request().Context(), Request{
		SessionID: c.FormValue("session_id"),
		Image:     data,
		ImageName: fh.Filename,
		Language:  lang,
		Market:    c.FormValue("market"),
	})
	if err != nil {
		return h.analysisError(err, lang)
	}
	return c.JSON(http.StatusOK, reportToResponse(r))
}

// @Summary      Download a report
// @Description  Renders the latest accepted analysis of a session as PDF or JSON
// @Tags         reports
// @Produce      application/pdf
// @Produce      json
// @Param        id        path      string  true   "Session ID"
// @Param        format    query     string  false  "pdf (default) or json"
// @Param        language  query     string  false  "Report language (en, es, fi)"
// @Success      200       {file}    binary
// @Failure      400       {object}  shared.APIError
// @Failure      404       {object}  shared.APIError
// @Failure      500       {object}  shared.APIError
// @Router       /sessions/{id}/report [get]
func (h *Handler) Report(c echo.Context) error {
	sessionID := c.Param("id")

	format, err := report.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return shared.BadRequest("invalid_request", err.Error())
	}

	r, err := h.service.Latest(c.Request().Context(), sessionID, c.QueryParam("language"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("not_found", "no analysis for this session")
		}
		h.logger.Error("failed to load report", "error", err, "session_id", sessionID)
		return shared.InternalError("report_failed", "failed to load analysis")
	}

	data, err := h.renderer.Render(format, r.ReportData(h.rules))
	if err != nil {
		h.logger.Error("failed to render report", "error", err, "session_id", sessionID, "format", format)
		return shared.InternalError("report_failed", "failed to generate report")
	}

	name := report.FileName(r.Image.Name, format, time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, format.ContentType(), data)
}

// @Summary      List target markets
// @Description  Returns the markets that have localization rules
// @Tags         markets
// @Produce      json
// @Param        language  query     string  false  "Language for market names (en, es, fi)"
// @Success      200       {object}  dto.MarketListResponse
// @Router       /markets [get]
func (h *Handler) Markets(c echo.Context) error {
	lang := i18n.ParseLanguage(c.QueryParam("language"))

	markets := h.rules.Markets()
	response := make([]dto.MarketResponse, len(markets))
	for i, m := range markets {
		response[i] = dto.MarketResponse{Code: m.Code, Name: m.DisplayName(lang)}
	}
	return c.JSON(http.StatusOK, dto.MarketListResponse{Markets: response})
}

var retryPrompt = i18n.Catalog{
	i18n.English: {"retry": "The image could not be analyzed. Please try again."},
	i18n.Spanish: {"retry": "No se pudo analizar la imagen. Inténtelo de nuevo."},
	i18n.Finnish: {"retry": "Kuvaa ei voitu analysoida. Yritä uudelleen."},
}

func (h *Handler) analysisError(err error, lang string) error {
	switch {
	case errors.Is(err, vision.ErrInvalidImage):
		return shared.BadRequest("invalid_request", "image is not valid base64 data")
	case errors.Is(err, ErrImageTooLarge):
		apiErr := shared.NewAPIError("image_too_large", "image exceeds the upload limit")
		var sizeErr *SizeError
		if errors.As(err, &sizeErr) {
			apiErr = apiErr.WithDetails(dto.UploadLimitDetails{SizeBytes: sizeErr.Size, LimitBytes: sizeErr.Limit})
		}
		return apiErr.ToHTTP(http.StatusRequestEntityTooLarge)
	case errors.Is(err, ErrUnsupportedImage):
		return shared.BadRequest("unsupported_image", "only JPEG, PNG, GIF and WebP images are accepted")
	case errors.Is(err, shared.ErrConflict):
		return shared.Conflict("superseded", "a newer analysis was requested for this session")
	case vision.IsKind(err, vision.KindNormalization):
		h.logger.Warn("provider response could not be normalized", "error", err)
		return shared.BadGateway("analysis_failed", retryPrompt.T(i18n.ParseLanguage(lang), "retry", nil))
	}

	var f *vision.Failure
	if errors.As(err, &f) {
		h.logger.Error("vision provider failed", "error", err, "kind", f.Kind)
		return shared.BadGateway("provider_error", f.Message)
	}

	h.logger.Error("analysis failed", "error", err)
	return shared.InternalError("analysis_failed", "analysis failed")
}

func reportToResponse(r *Report) dto.AnalysisResponse {
	findings := make([]dto.FindingResponse, len(r.Findings))
	for i, f := range r.Findings {
		findings[i] = findingToResponse(f)
	}
	advice := make([]dto.AdviceResponse, len(r.Advice))
	for i, a := range r.Advice {
		advice[i] = dto.AdviceResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Advice:      a.Advice,
			Category:    string(a.Category),
		}
	}

	return dto.AnalysisResponse{
		SessionID: r.SessionID,
		Sequence:  r.Sequence,
		Image: dto.ImageResponse{
			ID:         r.Image.ID,
			Name:       r.Image.Name,
			Size:       r.Image.Size,
			MimeType:   r.Image.MimeType,
			UploadDate: r.Image.UploadDate.Format(time.RFC3339),
		},
		Language: r.Language.String(),
		Market:   r.Market,
		Source:   string(r.Source),
		Width:    r.Dimensions.Width,
		Height:   r.Dimensions.Height,
		Summary: dto.SummaryCounts{
			Total:    r.Summary.Total,
			Critical: r.Summary.Critical,
			High:     r.Summary.High,
			Medium:   r.Summary.Medium,
			Low:      r.Summary.Low,
		},
		Findings:    findings,
		Advice:      advice,
		Detections:  detectionsToResponse(r.Vision),
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	}
}

// detectionsToResponse lists what the findings were derived from. The first
// text annotation is the full-page block and is reported separately.
func detectionsToResponse(v *vision.VisionResult) dto.DetectionsResponse {
	v = vision.NormalizeResult(v)
	resp := dto.DetectionsResponse{
		FullText: v.FullText(),
		Labels:   make([]dto.DetectedLabel, 0, len(v.LabelAnnotations)),
		Text:     []dto.DetectedText{},
		Objects:  make([]dto.DetectedObject, 0, len(v.LocalizedObjectAnnotations)),
	}
	for _, l := range v.LabelAnnotations {
		resp.Labels = append(resp.Labels, dto.DetectedLabel{Description: l.Description, Score: score(l.Score)})
	}
	if len(v.TextAnnotations) > 1 {
		for _, t := range v.TextAnnotations[1:] {
			resp.Text = append(resp.Text, dto.DetectedText{Text: t.Description, Coordinates: polyToResponse(t.BoundingPoly)})
		}
	}
	for _, o := range v.LocalizedObjectAnnotations {
		resp.Objects = append(resp.Objects, dto.DetectedObject{
			Name:        o.Name,
			Score:       score(o.Score),
			Coordinates: polyToResponse(o.BoundingPoly),
		})
	}
	return resp
}

func polyToResponse(p *vision.BoundingPoly) *dto.CoordinatesResponse {
	x, y, w, h, ok := p.Bounds()
	if !ok {
		return nil
	}
	return &dto.CoordinatesResponse{X: x, Y: y, Width: w, Height: h}
}

func score(s *float64) float64 {
	if s == nil {
		return 0
	}
	return *s
}

func findingToResponse(f analysis.Finding) dto.FindingResponse {
	resp := dto.FindingResponse{
		ID:          f.ID,
		Category:    string(f.Category),
		Severity:    string(f.Severity),
		Title:       f.Title,
		Description: f.Description,
		Suggestion:  f.Suggestion,
		Impact:      f.Impact,
	}
	if f.Coordinates != nil {
		resp.Coordinates = &dto.CoordinatesResponse{
			X:      f.Coordinates.X,
			Y:      f.Coordinates.Y,
			Width:  f.Coordinates.Width,
			Height: f.Coordinates.Height,
		}
	}
	return resp
}
