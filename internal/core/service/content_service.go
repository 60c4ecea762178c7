package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// Upload categories, one directory per entity type.
const (
	CategoryProjects     = "projects"
	CategorySkills       = "skills"
	CategoryCertificates = "certificates"
	CategoryEducation    = "education"
	CategorySite         = "site"
	CategoryFiles        = "files"
)

// ContentService implements CRUD over the portfolio entities.
type ContentService struct {
	projects     ports.ProjectRepository
	skills       ports.SkillRepository
	certificates ports.CertificateRepository
	education    ports.EducationRepository
	experience   ports.ExperienceRepository
	messages     ports.MessageRepository
	files        ports.FileStore
	logger       zerolog.Logger
}

func NewContentService(
	projects ports.ProjectRepository,
	skills ports.SkillRepository,
	certificates ports.CertificateRepository,
	education ports.EducationRepository,
	experience ports.ExperienceRepository,
	messages ports.MessageRepository,
	files ports.FileStore,
	logger zerolog.Logger,
) *ContentService {
	return &ContentService{
		projects:     projects,
		skills:       skills,
		certificates: certificates,
		education:    education,
		experience:   experience,
		messages:     messages,
		files:        files,
		logger:       logger,
	}
}

// storeImage saves a replacement upload and removes the file it displaces.
// Returns the previous filename unchanged when no upload was provided.
func (s *ContentService) storeImage(category, current string, upload *ports.FileUpload) (string, error) {
	if upload == nil {
		return current, nil
	}
	stored, err := s.files.Save(category, *upload)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	if current != "" {
		if err := s.files.Remove(category, current); err != nil {
			s.logger.Warn().Err(err).Str("filename", current).Msg("failed to remove replaced image")
		}
	}
	return stored, nil
}

// --- Projects ---

func (s *ContentService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *ContentService) CreateProject(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
	image, err := s.storeImage(CategoryProjects, "", in.Image)
	if err != nil {
		return nil, err
	}

	created, err := s.projects.Create(ctx, &domain.Project{
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		Image:       image,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("title", created.Title).Msg("project created")
	return created, nil
}

func (s *ContentService) UpdateProject(ctx context.Context, id string, in ports.ProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Title = in.Title
	project.Description = in.Description
	project.Link = in.Link
	if project.Image, err = s.storeImage(CategoryProjects, project.Image, in.Image); err != nil {
		return nil, err
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	if project.Image != "" {
		if err := s.files.Remove(CategoryProjects, project.Image); err != nil {
			s.logger.Warn().Err(err).Str("filename", project.Image).Msg("failed to remove project image")
		}
	}
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

// --- Skills ---

func (s *ContentService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.skills.List(ctx)
}

func (s *ContentService) CreateSkill(ctx context.Context, in ports.SkillInput) (*domain.Skill, error) {
	image, err := s.storeImage(CategorySkills, "", in.Image)
	if err != nil {
		return nil, err
	}

	created, err := s.skills.Create(ctx, &domain.Skill{Name: in.Name, Image: image})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("skill_id", created.ID).Str("name", created.Name).Msg("skill created")
	return created, nil
}

func (s *ContentService) UpdateSkill(ctx context.Context, id string, in ports.SkillInput) (*domain.Skill, error) {
	skill, err := s.skills.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	skill.Name = in.Name
	if skill.Image, err = s.storeImage(CategorySkills, skill.Image, in.Image); err != nil {
		return nil, err
	}

	if err := s.skills.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *ContentService) DeleteSkill(ctx context.Context, id string) error {
	skill, err := s.skills.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.skills.Delete(ctx, id); err != nil {
		return err
	}
	if skill.Image != "" {
		if err := s.files.Remove(CategorySkills, skill.Image); err != nil {
			s.logger.Warn().Err(err).Str("filename", skill.Image).Msg("failed to remove skill image")
		}
	}
	return nil
}

// --- Certificates ---

func (s *ContentService) ListCertificates(ctx context.Context) ([]domain.Certificate, error) {
	return s.certificates.List(ctx)
}

func (s *ContentService) CreateCertificate(ctx context.Context, in ports.CertificateInput) (*domain.Certificate, error) {
	image, err := s.storeImage(CategoryCertificates, "", in.Image)
	if err != nil {
		return nil, err
	}

	created, err := s.certificates.Create(ctx, &domain.Certificate{Title: in.Title, Image: image})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("certificate_id", created.ID).Str("title", created.Title).Msg("certificate created")
	return created, nil
}

func (s *ContentService) UpdateCertificate(ctx context.Context, id string, in ports.CertificateInput) (*domain.Certificate, error) {
	cert, err := s.certificates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cert.Title = in.Title
	if cert.Image, err = s.storeImage(CategoryCertificates, cert.Image, in.Image); err != nil {
		return nil, err
	}

	if err := s.certificates.Update(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *ContentService) DeleteCertificate(ctx context.Context, id string) error {
	cert, err := s.certificates.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.certificates.Delete(ctx, id); err != nil {
		return err
	}
	if cert.Image != "" {
		if err := s.files.Remove(CategoryCertificates, cert.Image); err != nil {
			s.logger.Warn().Err(err).Str("filename", cert.Image).Msg("failed to remove certificate image")
		}
	}
	return nil
}

// --- Education ---

func (s *ContentService) ListEducation(ctx context.Context) ([]domain.Education, error) {
	return s.education.List(ctx)
}

func (s *ContentService) CreateEducation(ctx context.Context, in ports.EducationInput) (*domain.Education, error) {
	image, err := s.storeImage(CategoryEducation, "", in.Image)
	if err != nil {
		return nil, err
	}

	return s.education.Create(ctx, &domain.Education{
		Degree:      in.Degree,
		Institution: in.Institution,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		Order:       in.Order,
		Image:       image,
	})
}

func (s *ContentService) UpdateEducation(ctx context.Context, id string, in ports.EducationInput) (*domain.Education, error) {
	entry, err := s.education.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Degree = in.Degree
	entry.Institution = in.Institution
	entry.StartDate = in.StartDate
	entry.EndDate = in.EndDate
	entry.Description = in.Description
	entry.Order = in.Order
	if entry.Image, err = s.storeImage(CategoryEducation, entry.Image, in.Image); err != nil {
		return nil, err
	}

	if err := s.education.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ContentService) DeleteEducation(ctx context.Context, id string) error {
	entry, err := s.education.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.education.Delete(ctx, id); err != nil {
		return err
	}
	if entry.Image != "" {
		if err := s.files.Remove(CategoryEducation, entry.Image); err != nil {
			s.logger.Warn().Err(err).Str("filename", entry.Image).Msg("failed to remove education image")
		}
	}
	return nil
}

// --- Experience ---

func (s *ContentService) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	return s.experience.List(ctx)
}

func (s *ContentService) CreateExperience(ctx context.Context, in ports.ExperienceInput) (*domain.Experience, error) {
	return s.experience.Create(ctx, &domain.Experience{
		Position:    in.Position,
		Company:     in.Company,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		Order:       in.Order,
	})
}

func (s *ContentService) UpdateExperience(ctx context.Context, id string, in ports.ExperienceInput) (*domain.Experience, error) {
	entry, err := s.experience.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Position = in.Position
	entry.Company = in.Company
	entry.StartDate = in.StartDate
	entry.EndDate = in.EndDate
	entry.Description = in.Description
	entry.Order = in.Order

	if err := s.experience.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ContentService) DeleteExperience(ctx context.Context, id string) error {
	if _, err := s.experience.FindByID(ctx, id); err != nil {
		return err
	}
	return s.experience.Delete(ctx, id)
}

// DashboardCounts powers the admin landing page.
func (s *ContentService) DashboardCounts(ctx context.Context) (projects, skills, certificates, messages int64, err error) {
	if projects, err = s.projects.Count(ctx); err != nil {
		return 0, 0, 0, 0, err
	}
	if skills, err = s.skills.Count(ctx); err != nil {
		return 0, 0, 0, 0, err
	}
	if certificates, err = s.certificates.Count(ctx); err != nil {
		return 0, 0, 0, 0, err
	}
	if messages, err = s.messages.Count(ctx); err != nil {
		return 0, 0, 0, 0, err
	}
	return projects, skills, certificates, messages, nil
}
