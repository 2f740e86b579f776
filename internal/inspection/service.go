package inspection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/eleven-am/uxlens/internal/analysis"
	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/localization"
	"github.com/eleven-am/uxlens/internal/shared"
	"github.com/eleven-am/uxlens/internal/vision"
)

// Detector is the part of the vision orchestrator the service depends on.
type Detector interface {
	DetectBytes(ctx context.Context, image []byte) (*vision.Detection, error)
}

type Config struct {
	MaxUploadBytes  int64
	DefaultLanguage i18n.Language
	DefaultMarket   string
}

type Service struct {
	detector Detector
	advisor  *localization.Advisor
	store    Store
	cfg      Config
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(detector Detector, advisor *localization.Advisor, store Store, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if !cfg.DefaultLanguage.Valid() {
		cfg.DefaultLanguage = i18n.Fallback
	}
	if store == nil {
		store = NewMemoryStore()
	}
	if advisor == nil {
		advisor = localization.NewAdvisor(nil, logger)
	}
	return &Service{
		detector: detector,
		advisor:  advisor,
		store:    store,
		cfg:      cfg,
		logger:   logger.With("component", "inspection"),
		now:      time.Now,
	}
}

// Analyze validates the image, runs detection and derives findings and advice.
// The report is returned only if no newer request for the same session was
// issued meanwhile; otherwise ErrSuperseded is returned and nothing is stored.
func (s *Service) Analyze(ctx context.Context, req Request) (*Report, error) {
	img := req.Image
	if img == nil {
		decoded, err := vision.DecodeBase64(req.ImageBase64)
		if err != nil {
			return nil, err
		}
		img = decoded
	}

	info, err := s.validate(img)
	if err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = shared.NewID("sess_")
	}
	lang := s.language(req.Language)
	market := req.Market
	if market == "" {
		market = s.cfg.DefaultMarket
	}

	seq, err := s.store.Next(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue sequence: %w", err)
	}

	det, err := s.detector.DetectBytes(ctx, img)
	if err != nil {
		return nil, err
	}

	dims := analysis.Dimensions{Width: req.Width, Height: req.Height}
	if !dims.Known() {
		dims = analysis.Dimensions{Width: info.Width, Height: info.Height}
	}

	report := &Report{
		SessionID: sessionID,
		Sequence:  seq,
		Image: UploadedImage{
			ID:         uuid.NewString(),
			Name:       imageName(req.ImageName, info),
			Size:       int64(len(img)),
			MimeType:   info.MimeType(),
			UploadDate: s.now().UTC(),
		},
		Market:      market,
		Source:      det.Source,
		Dimensions:  dims,
		Vision:      det.Result,
		GeneratedAt: s.now().UTC(),
	}
	s.localize(report, lang)

	if err := s.store.Save(ctx, report); err != nil {
		if errors.Is(err, ErrSuperseded) {
			s.logger.Info("discarding stale analysis", "session_id", sessionID, "sequence", seq)
			return nil, err
		}
		return nil, fmt.Errorf("save report: %w", err)
	}

	s.logger.Info("analysis complete",
		"session_id", sessionID,
		"sequence", seq,
		"source", det.Source,
		"findings", len(report.Findings),
		"advice", len(report.Advice))

	return report, nil
}

// Latest returns the session's most recent accepted report in lang. An empty
// lang keeps the language it was generated in.
func (s *Service) Latest(ctx context.Context, sessionID, lang string) (*Report, error) {
	r, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if lang != "" {
		if l := i18n.ParseLanguage(lang); l != r.Language {
			localized := *r
			s.localize(&localized, l)
			return &localized, nil
		}
	}
	return r, nil
}

func (s *Service) localize(r *Report, lang i18n.Language) {
	r.Language = lang
	r.Findings = analysis.GenerateFindings(r.Vision, r.Dimensions, lang)
	r.Advice = s.advisor.BuildAdvice(lang, r.Market, r.Vision)
	r.Summary = analysis.Summarize(r.Findings)
}

func (s *Service) language(v string) i18n.Language {
	if v == "" {
		return s.cfg.DefaultLanguage
	}
	return i18n.ParseLanguage(v)
}

func (s *Service) validate(img []byte) (vision.ImageInfo, error) {
	if len(img) == 0 {
		return vision.ImageInfo{}, vision.ErrInvalidImage
	}
	if int64(len(img)) > s.cfg.MaxUploadBytes {
		return vision.ImageInfo{}, &SizeError{Size: int64(len(img)), Limit: s.cfg.MaxUploadBytes}
	}

	info, err := vision.DecodeInfo(img)
	if err != nil {
		return vision.ImageInfo{}, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if !acceptedMimeTypes[info.MimeType()] {
		return vision.ImageInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedImage, info.MimeType())
	}
	return info, nil
}

func imageName(name string, info vision.ImageInfo) string {
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" {
		return "screenshot." + info.Format
	}
	return name
}
