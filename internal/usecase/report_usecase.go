package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/safestreets-service/internal/domain"
	"github.com/safestreets-service/internal/domain/repository"
	"github.com/safestreets-service/internal/pkg/errors"
	"github.com/safestreets-service/internal/pkg/utils"
	"github.com/safestreets-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	// EmptyFeedMessage - текст пустой ленты
	EmptyFeedMessage = "No reports match this filter"

	// excerptLength - длина превью описания в карточке, в символах
	excerptLength = 120
)

// ReportUseCase - лента, создание, голосование и удаление отчётов
type ReportUseCase struct {
	sessionRepo      repository.SessionRepository
	reportRepo       repository.ReportRepository
	eventRepo        repository.EventRepository
	placeholderImage string
	defaultGeo       domain.GeoPoint
	logger           *zap.Logger
	now              func() time.Time
}

// NewReportUseCase создает новый экземпляр ReportUseCase.
// eventRepo может быть nil, тогда события не публикуются.
func NewReportUseCase(
	sessionRepo repository.SessionRepository,
	reportRepo repository.ReportRepository,
	eventRepo repository.EventRepository,
	placeholderImage string,
	defaultGeo domain.GeoPoint,
	logger *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		sessionRepo:      sessionRepo,
		reportRepo:       reportRepo,
		eventRepo:        eventRepo,
		placeholderImage: placeholderImage,
		defaultGeo:       defaultGeo,
		logger:           logger,
		now:              time.Now,
	}
}

// Feed возвращает карточки отчётов под фильтром сессии, новые первыми
func (uc *ReportUseCase) Feed(ctx context.Context, sessionID string) (*dto.FeedResponse, error) {
	session, err := loadSession(ctx, uc.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	reports, err := uc.reportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	filter := session.Shell.Filter
	filtered := filter.Apply(reports)
	now := uc.now()

	cards := make([]dto.ReportCard, 0, len(filtered))
	for _, r := range filtered {
		cards = append(cards, dto.ReportCard{
			ID:           r.ID,
			ImageURL:     r.ImageURL,
			Type:         r.Type,
			Badge:        r.Type.BadgeLabel(),
			Color:        r.Type.Color(),
			LocationName: r.LocationName,
			Address:      r.Address,
			Description:  r.Description,
			Excerpt:      excerpt(r.Description),
			Age:          domain.FormatTimeAgo(now, r.Timestamp),
			Upvotes:      r.Upvotes,
		})
	}

	resp := &dto.FeedResponse{
		Filter: filter,
		Cards:  cards,
		Total:  len(cards),
	}
	if len(cards) == 0 {
		resp.Message = EmptyFeedMessage
	}
	return resp, nil
}

// Submit принимает форму нового отчёта. Лимит проверяется до полей формы,
// отказ ничего не меняет.
func (uc *ReportUseCase) Submit(ctx context.Context, sessionID string, req dto.SubmitReportRequest) (*dto.ReportResponse, error) {
	var resp dto.ReportResponse

	err := uc.sessionRepo.Update(ctx, sessionID, func(s *domain.Session) error {
		if !s.Quota.CanReport() {
			return errors.ErrReportQuotaExhausted
		}

		report, err := uc.buildReport(req, s.Shell.Composer.Prefill)
		if err != nil {
			return err
		}

		if err := uc.reportRepo.Prepend(ctx, report); err != nil {
			return fmt.Errorf("prepend report: %w", err)
		}

		s.Quota.ConsumeReport()
		s.Shell.CloseComposer()
		s.Shell.SelectTab(domain.TabMap)

		resp = dto.ReportResponse{Report: report, Quota: s.Quota}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Report submitted",
		zap.String("report_id", resp.Report.ID),
		zap.String("type", string(resp.Report.Type)),
		zap.Bool("plotted", resp.Report.Plotted()),
		zap.String("session_id", sessionID))

	uc.publish(ctx, domain.ReportCreated, sessionID, resp.Report)
	return &resp, nil
}

// Upvote добавляет голос отчёту и списывает его с лимита сессии
func (uc *ReportUseCase) Upvote(ctx context.Context, sessionID, reportID string) (*dto.ReportResponse, error) {
	var resp dto.ReportResponse

	err := uc.sessionRepo.Update(ctx, sessionID, func(s *domain.Session) error {
		if !s.Quota.CanUpvote() {
			return errors.ErrUpvoteQuotaExhausted
		}

		updated, err := uc.reportRepo.Upvote(ctx, reportID)
		if err != nil {
			return fmt.Errorf("upvote report: %w", err)
		}
		if updated == nil {
			return errors.ErrReportNotFound
		}

		s.Quota.ConsumeUpvote()
		resp = dto.ReportResponse{Report: *updated, Quota: s.Quota}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Report upvoted",
		zap.String("report_id", reportID),
		zap.Int("upvotes", resp.Report.Upvotes))

	uc.publish(ctx, domain.ReportUpvoted, sessionID, resp.Report)
	return &resp, nil
}

// Delete удаляет отчёт после явного подтверждения и закрывает его попап
func (uc *ReportUseCase) Delete(ctx context.Context, sessionID, reportID string, confirmed bool) error {
	if !confirmed {
		return errors.ErrConfirmationRequired
	}

	var removed domain.SafetyReport

	err := uc.sessionRepo.Update(ctx, sessionID, func(s *domain.Session) error {
		report, err := uc.reportRepo.Get(ctx, reportID)
		if err != nil {
			return fmt.Errorf("get report: %w", err)
		}
		if report == nil {
			return errors.ErrReportNotFound
		}

		ok, err := uc.reportRepo.Delete(ctx, reportID)
		if err != nil {
			return fmt.Errorf("delete report: %w", err)
		}
		if !ok {
			return errors.ErrReportNotFound
		}

		s.Viewport.Forget(reportID)
		removed = *report
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("Report deleted",
		zap.String("report_id", reportID),
		zap.String("session_id", sessionID))

	uc.publish(ctx, domain.ReportDeleted, sessionID, removed)
	return nil
}

func (uc *ReportUseCase) buildReport(req dto.SubmitReportRequest, prefill *domain.MapPosition) (domain.SafetyReport, error) {
	reportType := domain.ReportType(strings.TrimSpace(req.Type))
	if reportType == "" {
		reportType = domain.ReportTypeDangerous
	}
	if !reportType.Valid() {
		return domain.SafetyReport{}, errors.ErrInvalidReport.WithMessage(fmt.Sprintf("Unknown report type %q", req.Type))
	}

	name := strings.TrimSpace(req.LocationName)
	address := strings.TrimSpace(req.Address)
	description := strings.TrimSpace(req.Description)
	if name == "" || address == "" || description == "" {
		return domain.SafetyReport{}, errors.ErrInvalidReport
	}

	geo := uc.defaultGeo
	if req.Lat != nil {
		geo.Lat = *req.Lat
	}
	if req.Lng != nil {
		geo.Lng = *req.Lng
	}
	if !utils.ValidateCoordinates(geo.Lat, geo.Lng) {
		return domain.SafetyReport{}, errors.ErrInvalidCoordinates
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.SafetyReport{}, fmt.Errorf("generate report id: %w", err)
	}

	report := domain.SafetyReport{
		ID:           id.String(),
		Geo:          geo,
		Type:         reportType,
		LocationName: name,
		Address:      address,
		Description:  description,
		Timestamp:    uc.now(),
		ImageURL:     uc.placeholderImage,
	}
	if prefill != nil {
		report.Position = &domain.MapPosition{
			X: utils.ClampPercent(prefill.X),
			Y: utils.ClampPercent(prefill.Y),
		}
	}
	return report, nil
}

// publish отправляет событие; ошибка не отменяет уже выполненное действие
func (uc *ReportUseCase) publish(ctx context.Context, eventType domain.ReportEventType, sessionID string, report domain.SafetyReport) {
	if uc.eventRepo == nil {
		return
	}

	event := domain.ReportEvent{
		Type:       eventType,
		ReportID:   report.ID,
		ReportType: report.Type,
		Upvotes:    report.Upvotes,
		SessionID:  sessionID,
		OccurredAt: uc.now(),
	}
	if err := uc.eventRepo.Publish(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish report event",
			zap.String("type", string(eventType)),
			zap.String("report_id", report.ID),
			zap.Error(err))
	}
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptLength {
		return s
	}
	return strings.TrimRightFunc(string(runes[:excerptLength]), unicode.IsSpace) + "…"
}
