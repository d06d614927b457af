package reading

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type storyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	List(ctx context.Context, filter domain.StoryFilter) ([]domain.Story, error)
	Count(ctx context.Context, filter domain.StoryFilter) (int, error)
}

const (
	DefaultStoryLimit = 20
	MaxStoryLimit     = 100
	MaxQueryLength    = 200
)

// Service implements the reading assistant: story catalog access, document
// building, navigation and the speech contract.
type Service struct {
	stories  storyRepo
	log      *slog.Logger
	settings domain.ReadingSettings
}

// NewService creates a new Reading service.
func NewService(log *slog.Logger, stories storyRepo, settings domain.ReadingSettings) *Service {
	if settings.Workers < 1 {
		settings.Workers = 1
	}
	return &Service{
		stories:  stories,
		log:      log.With("service", "reading"),
		settings: settings,
	}
}

// Settings returns the settings the service was created with.
func (s *Service) Settings() domain.ReadingSettings {
	return s.settings
}
