package ports

import (
	"context"
	"io"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// FileUpload is an incoming multipart file, decoupled from the transport.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

// FileStore abstracts upload storage. Category is a directory-like grouping
// ("projects", "skills", "certificates", "education", "site", "files").
type FileStore interface {
	// Save stores the upload under a randomly generated filename that keeps
	// the original extension, and returns that filename.
	Save(category string, upload FileUpload) (string, error)
	// Remove deletes a previously stored file. Removing a missing file is
	// not an error.
	Remove(category, filename string) error
	// Path returns the on-disk path for a stored filename.
	Path(category, filename string) string
}

// ProjectInput carries the writable fields of a project plus an optional
// replacement image.
type ProjectInput struct {
	Title       string
	Description string
	Link        string
	Image       *FileUpload
}

type SkillInput struct {
	Name  string
	Image *FileUpload
}

type CertificateInput struct {
	Title string
	Image *FileUpload
}

type EducationInput struct {
	Degree      string
	Institution string
	StartDate   string
	EndDate     string
	Description string
	Order       int
	Image       *FileUpload
}

type ExperienceInput struct {
	Position    string
	Company     string
	StartDate   string
	EndDate     string
	Description string
	Order       int
}

// ContentService manages the portfolio entities shown on the public site.
type ContentService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, in ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, in ProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListSkills(ctx context.Context) ([]domain.Skill, error)
	CreateSkill(ctx context.Context, in SkillInput) (*domain.Skill, error)
	UpdateSkill(ctx context.Context, id string, in SkillInput) (*domain.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	ListCertificates(ctx context.Context) ([]domain.Certificate, error)
	CreateCertificate(ctx context.Context, in CertificateInput) (*domain.Certificate, error)
	UpdateCertificate(ctx context.Context, id string, in CertificateInput) (*domain.Certificate, error)
	DeleteCertificate(ctx context.Context, id string) error

	ListEducation(ctx context.Context) ([]domain.Education, error)
	CreateEducation(ctx context.Context, in EducationInput) (*domain.Education, error)
	UpdateEducation(ctx context.Context, id string, in EducationInput) (*domain.Education, error)
	DeleteEducation(ctx context.Context, id string) error

	ListExperience(ctx context.Context) ([]domain.Experience, error)
	CreateExperience(ctx context.Context, in ExperienceInput) (*domain.Experience, error)
	UpdateExperience(ctx context.Context, id string, in ExperienceInput) (*domain.Experience, error)
	DeleteExperience(ctx context.Context, id string) error

	// DashboardCounts powers the admin landing page.
	DashboardCounts(ctx context.Context) (projects, skills, certificates, messages int64, err error)
}

// SiteService manages site-wide assets and visitor interaction: named image
// slots, the resume file, the contact-info record, and contact messages.
type SiteService interface {
	ListSiteImages(ctx context.Context) ([]domain.SiteImage, error)
	UploadSiteImage(ctx context.Context, name string, upload FileUpload) (*domain.SiteImage, error)
	DeleteSiteImage(ctx context.Context, name string) error

	UploadResume(ctx context.Context, upload FileUpload) (*domain.Resume, error)
	// ResumePath returns the on-disk path of the latest resume, or
	// domain.ErrResumeNotFound when none was uploaded yet.
	ResumePath(ctx context.Context) (string, error)

	// ContactInfo returns the singleton record, creating the default on
	// first read.
	ContactInfo(ctx context.Context) (*domain.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, info domain.ContactInfo) (*domain.ContactInfo, error)

	// SubmitMessage records a contact-form submission. Duplicate
	// submissions within the dedup window yield domain.ErrDuplicateMessage.
	SubmitMessage(ctx context.Context, name, email, body string) (*domain.Message, error)
	ListMessages(ctx context.Context) ([]domain.Message, error)
}
