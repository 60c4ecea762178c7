package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// SkillRepository persists skills.
type SkillRepository interface {
	List(ctx context.Context) ([]domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CertificateRepository persists certificates.
type CertificateRepository interface {
	List(ctx context.Context) ([]domain.Certificate, error)
	FindByID(ctx context.Context, id string) (*domain.Certificate, error)
	Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, error)
	Update(ctx context.Context, c *domain.Certificate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// EducationRepository persists education timeline entries.
// List returns entries sorted by Order ascending.
type EducationRepository interface {
	List(ctx context.Context) ([]domain.Education, error)
	FindByID(ctx context.Context, id string) (*domain.Education, error)
	Create(ctx context.Context, e *domain.Education) (*domain.Education, error)
	Update(ctx context.Context, e *domain.Education) error
	Delete(ctx context.Context, id string) error
}

// ExperienceRepository persists work-history timeline entries.
// List returns entries sorted by Order ascending.
type ExperienceRepository interface {
	List(ctx context.Context) ([]domain.Experience, error)
	FindByID(ctx context.Context, id string) (*domain.Experience, error)
	Create(ctx context.Context, e *domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, e *domain.Experience) error
	Delete(ctx context.Context, id string) error
}

// MessageRepository persists contact-form submissions.
// List returns messages newest first.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	Count(ctx context.Context) (int64, error)
}

// SiteImageRepository persists named image slots. Slot names are unique.
type SiteImageRepository interface {
	List(ctx context.Context) ([]domain.SiteImage, error)
	FindByName(ctx context.Context, name string) (*domain.SiteImage, error)
	Upsert(ctx context.Context, img *domain.SiteImage) error
	DeleteByName(ctx context.Context, name string) error
}

// ResumeRepository tracks uploaded resume files, newest wins.
type ResumeRepository interface {
	Latest(ctx context.Context) (*domain.Resume, error)
	Save(ctx context.Context, r *domain.Resume) error
}

// ContactInfoRepository persists the singleton contact-info record.
// Get reports a missing record as (nil, nil) so the service can lazily
// create the default.
type ContactInfoRepository interface {
	Get(ctx context.Context) (*domain.ContactInfo, error)
	Upsert(ctx context.Context, info *domain.ContactInfo) error
}
