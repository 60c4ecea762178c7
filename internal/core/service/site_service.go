package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// SubmissionDeduper abstracts the duplicate-submission store (Redis).
type SubmissionDeduper interface {
	IsDuplicate(ctx context.Context, email, body string) (bool, error)
	Mark(ctx context.Context, email, body string) error
}

// SiteService manages site images, the resume file, contact info, and
// visitor messages.
type SiteService struct {
	images       ports.SiteImageRepository
	resumes      ports.ResumeRepository
	contact      ports.ContactInfoRepository
	messages     ports.MessageRepository
	files        ports.FileStore
	dedup        SubmissionDeduper
	contactEmail string // default for the lazily created contact record
	logger       zerolog.Logger
}

func NewSiteService(
	images ports.SiteImageRepository,
	resumes ports.ResumeRepository,
	contact ports.ContactInfoRepository,
	messages ports.MessageRepository,
	files ports.FileStore,
	dedup SubmissionDeduper,
	contactEmail string,
	logger zerolog.Logger,
) *SiteService {
	return &SiteService{
		images:       images,
		resumes:      resumes,
		contact:      contact,
		messages:     messages,
		files:        files,
		dedup:        dedup,
		contactEmail: contactEmail,
		logger:       logger,
	}
}

// --- Site images ---

func (s *SiteService) ListSiteImages(ctx context.Context) ([]domain.SiteImage, error) {
	return s.images.List(ctx)
}

// UploadSiteImage stores the upload and binds it to the named slot,
// replacing and removing any previous file in that slot.
func (s *SiteService) UploadSiteImage(ctx context.Context, name string, upload ports.FileUpload) (*domain.SiteImage, error) {
	stored, err := s.files.Save(CategorySite, upload)
	if err != nil {
		return nil, fmt.Errorf("store site image: %w", err)
	}

	previous, err := s.images.FindByName(ctx, name)
	if err != nil && err != domain.ErrImageNotFound {
		return nil, err
	}

	img := &domain.SiteImage{
		Name:       name,
		Filename:   stored,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.images.Upsert(ctx, img); err != nil {
		return nil, err
	}

	if previous != nil && previous.Filename != "" {
		if err := s.files.Remove(CategorySite, previous.Filename); err != nil {
			s.logger.Warn().Err(err).Str("filename", previous.Filename).Msg("failed to remove replaced site image")
		}
	}

	s.logger.Info().Str("slot", name).Str("filename", stored).Msg("site image uploaded")
	return img, nil
}

func (s *SiteService) DeleteSiteImage(ctx context.Context, name string) error {
	img, err := s.images.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if err := s.images.DeleteByName(ctx, name); err != nil {
		return err
	}
	if err := s.files.Remove(CategorySite, img.Filename); err != nil {
		s.logger.Warn().Err(err).Str("filename", img.Filename).Msg("failed to remove site image file")
	}
	return nil
}

// --- Resume ---

func (s *SiteService) UploadResume(ctx context.Context, upload ports.FileUpload) (*domain.Resume, error) {
	stored, err := s.files.Save(CategoryFiles, upload)
	if err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	resume := &domain.Resume{Filename: stored, UploadedAt: time.Now().UTC()}
	if err := s.resumes.Save(ctx, resume); err != nil {
		return nil, err
	}

	s.logger.Info().Str("filename", stored).Msg("resume uploaded")
	return resume, nil
}

func (s *SiteService) ResumePath(ctx context.Context) (string, error) {
	resume, err := s.resumes.Latest(ctx)
	if err != nil {
		return "", err
	}
	return s.files.Path(CategoryFiles, resume.Filename), nil
}

// --- Contact info ---

// ContactInfo returns the singleton record, creating a default bound to the
// configured contact email on first read.
func (s *SiteService) ContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	info, err := s.contact.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info != nil {
		return info, nil
	}

	info = &domain.ContactInfo{Email: s.contactEmail}
	if err := s.contact.Upsert(ctx, info); err != nil {
		return nil, err
	}
	s.logger.Info().Str("email", s.contactEmail).Msg("default contact info created")
	return info, nil
}

func (s *SiteService) UpdateContactInfo(ctx context.Context, info domain.ContactInfo) (*domain.ContactInfo, error) {
	if err := s.contact.Upsert(ctx, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// --- Messages ---

// SubmitMessage records a contact-form submission. An identical (email,
// body) pair seen within the dedup window is rejected; a dedup store outage
// degrades to accepting the message.
func (s *SiteService) SubmitMessage(ctx context.Context, name, email, body string) (*domain.Message, error) {
	isDup, err := s.dedup.IsDuplicate(ctx, email, body)
	if err != nil {
		s.logger.Warn().Err(err).Msg("dedup check failed, accepting anyway")
	} else if isDup {
		return nil, domain.ErrDuplicateMessage
	}

	message, err := s.messages.Create(ctx, &domain.Message{
		Name:       name,
		Email:      email,
		Body:       body,
		ReceivedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.dedup.Mark(ctx, email, body); err != nil {
		s.logger.Warn().Err(err).Msg("failed to mark submission for dedup")
	}

	s.logger.Info().Str("from", email).Msg("contact message received")
	return message, nil
}

func (s *SiteService) ListMessages(ctx context.Context) ([]domain.Message, error) {
	return s.messages.List(ctx)
}
