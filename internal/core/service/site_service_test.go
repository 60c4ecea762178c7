package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

type stubSiteImageRepo struct {
	images map[string]*domain.SiteImage
}

func newStubSiteImageRepo() *stubSiteImageRepo {
	return &stubSiteImageRepo{images: make(map[string]*domain.SiteImage)}
}

func (r *stubSiteImageRepo) List(context.Context) ([]domain.SiteImage, error) {
	out := make([]domain.SiteImage, 0, len(r.images))
	for _, img := range r.images {
		out = append(out, *img)
	}
	return out, nil
}

func (r *stubSiteImageRepo) FindByName(_ context.Context, name string) (*domain.SiteImage, error) {
	if img, ok := r.images[name]; ok {
		clone := *img
		return &clone, nil
	}
	return nil, domain.ErrImageNotFound
}

func (r *stubSiteImageRepo) Upsert(_ context.Context, img *domain.SiteImage) error {
	clone := *img
	r.images[img.Name] = &clone
	return nil
}

func (r *stubSiteImageRepo) DeleteByName(_ context.Context, name string) error {
	if _, ok := r.images[name]; !ok {
		return domain.ErrImageNotFound
	}
	delete(r.images, name)
	return nil
}

type stubResumeRepo struct {
	resumes []domain.Resume
}

func (r *stubResumeRepo) Latest(context.Context) (*domain.Resume, error) {
	if len(r.resumes) == 0 {
		return nil, domain.ErrResumeNotFound
	}
	clone := r.resumes[len(r.resumes)-1]
	return &clone, nil
}

func (r *stubResumeRepo) Save(_ context.Context, resume *domain.Resume) error {
	r.resumes = append(r.resumes, *resume)
	return nil
}

type stubContactRepo struct {
	info    *domain.ContactInfo
	upserts int
}

func (r *stubContactRepo) Get(context.Context) (*domain.ContactInfo, error) {
	if r.info == nil {
		return nil, nil
	}
	clone := *r.info
	return &clone, nil
}

func (r *stubContactRepo) Upsert(_ context.Context, info *domain.ContactInfo) error {
	clone := *info
	r.info = &clone
	r.upserts++
	return nil
}

type stubDeduper struct {
	seen map[string]bool
	err  error
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{seen: make(map[string]bool)}
}

func (d *stubDeduper) IsDuplicate(_ context.Context, email, body string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.seen[email+"|"+body], nil
}

func (d *stubDeduper) Mark(_ context.Context, email, body string) error {
	if d.err != nil {
		return d.err
	}
	d.seen[email+"|"+body] = true
	return nil
}

type siteFixture struct {
	images   *stubSiteImageRepo
	resumes  *stubResumeRepo
	contact  *stubContactRepo
	messages *stubMessageRepo
	files    *stubFileStore
	dedup    *stubDeduper
	svc      *SiteService
}

func newSiteFixture() *siteFixture {
	f := &siteFixture{
		images:   newStubSiteImageRepo(),
		resumes:  &stubResumeRepo{},
		contact:  &stubContactRepo{},
		messages: &stubMessageRepo{},
		files:    &stubFileStore{},
		dedup:    newStubDeduper(),
	}
	f.svc = NewSiteService(f.images, f.resumes, f.contact, f.messages, f.files, f.dedup, "owner@x.com", zerolog.Nop())
	return f
}

func TestSiteService_UploadSiteImage_ReplacesSlot(t *testing.T) {
	f := newSiteFixture()

	first, err := f.svc.UploadSiteImage(context.Background(), "hero", ports.FileUpload{
		Filename: "hero.png", Reader: strings.NewReader("a"),
	})
	if err != nil {
		t.Fatalf("first upload failed: %v", err)
	}

	second, err := f.svc.UploadSiteImage(context.Background(), "hero", ports.FileUpload{
		Filename: "hero2.jpg", Reader: strings.NewReader("b"),
	})
	if err != nil {
		t.Fatalf("second upload failed: %v", err)
	}
	if second.Filename == first.Filename {
		t.Fatalf("expected a new stored filename")
	}

	imgs, _ := f.images.List(context.Background())
	if len(imgs) != 1 {
		t.Fatalf("expected one slot, got %d", len(imgs))
	}
	if len(f.files.removed) != 1 || f.files.removed[0] != "site/"+first.Filename {
		t.Fatalf("expected replaced file removed, got %v", f.files.removed)
	}
}

func TestSiteService_DeleteSiteImage(t *testing.T) {
	f := newSiteFixture()

	img, err := f.svc.UploadSiteImage(context.Background(), "hero", ports.FileUpload{
		Filename: "hero.png", Reader: strings.NewReader("a"),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if err := f.svc.DeleteSiteImage(context.Background(), "hero"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := f.svc.DeleteSiteImage(context.Background(), "hero"); err != domain.ErrImageNotFound {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
	if f.files.removed[len(f.files.removed)-1] != "site/"+img.Filename {
		t.Fatalf("expected stored file removed, got %v", f.files.removed)
	}
}

func TestSiteService_ResumePath(t *testing.T) {
	f := newSiteFixture()

	if _, err := f.svc.ResumePath(context.Background()); err != domain.ErrResumeNotFound {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}

	resume, err := f.svc.UploadResume(context.Background(), ports.FileUpload{
		Filename: "cv.pdf", Reader: strings.NewReader("pdf"),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	path, err := f.svc.ResumePath(context.Background())
	if err != nil {
		t.Fatalf("resume path failed: %v", err)
	}
	if path != "/uploads/files/"+resume.Filename {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestSiteService_ResumePath_NewestWins(t *testing.T) {
	f := newSiteFixture()

	if _, err := f.svc.UploadResume(context.Background(), ports.FileUpload{Filename: "old.pdf", Reader: strings.NewReader("a")}); err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	latest, err := f.svc.UploadResume(context.Background(), ports.FileUpload{Filename: "new.pdf", Reader: strings.NewReader("b")})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	path, err := f.svc.ResumePath(context.Background())
	if err != nil {
		t.Fatalf("resume path failed: %v", err)
	}
	if !strings.HasSuffix(path, latest.Filename) {
		t.Fatalf("expected latest resume, got %q", path)
	}
}

func TestSiteService_ContactInfo_LazyDefault(t *testing.T) {
	f := newSiteFixture()

	info, err := f.svc.ContactInfo(context.Background())
	if err != nil {
		t.Fatalf("contact info failed: %v", err)
	}
	if info.Email != "owner@x.com" {
		t.Fatalf("expected default email, got %q", info.Email)
	}

	// Second read must not create another record.
	if _, err := f.svc.ContactInfo(context.Background()); err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if f.contact.upserts != 1 {
		t.Fatalf("expected exactly one upsert, got %d", f.contact.upserts)
	}
}

func TestSiteService_UpdateContactInfo(t *testing.T) {
	f := newSiteFixture()

	updated, err := f.svc.UpdateContactInfo(context.Background(), domain.ContactInfo{
		Email: "new@x.com", Phone: "123", Location: "Berlin",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != "new@x.com" {
		t.Fatalf("unexpected email %q", updated.Email)
	}

	info, err := f.svc.ContactInfo(context.Background())
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if info.Email != "new@x.com" || info.Location != "Berlin" {
		t.Fatalf("update not persisted: %+v", info)
	}
}

func TestSiteService_SubmitMessage_Dedup(t *testing.T) {
	f := newSiteFixture()

	msg, err := f.svc.SubmitMessage(context.Background(), "Visitor", "v@x.com", "hello there")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if msg.ReceivedAt.IsZero() {
		t.Fatalf("expected ReceivedAt to be set")
	}

	if _, err := f.svc.SubmitMessage(context.Background(), "Visitor", "v@x.com", "hello there"); err != domain.ErrDuplicateMessage {
		t.Fatalf("expected ErrDuplicateMessage, got %v", err)
	}

	// A different body from the same sender is not a duplicate.
	if _, err := f.svc.SubmitMessage(context.Background(), "Visitor", "v@x.com", "another note"); err != nil {
		t.Fatalf("distinct submission rejected: %v", err)
	}

	msgs, _ := f.svc.ListMessages(context.Background())
	if len(msgs) != 2 {
		t.Fatalf("expected 2 stored messages, got %d", len(msgs))
	}
}

func TestSiteService_SubmitMessage_DedupOutage(t *testing.T) {
	f := newSiteFixture()
	f.dedup.err = errors.New("redis down")

	if _, err := f.svc.SubmitMessage(context.Background(), "Visitor", "v@x.com", "hello"); err != nil {
		t.Fatalf("submission should survive a dedup outage, got %v", err)
	}

	msgs, _ := f.svc.ListMessages(context.Background())
	if len(msgs) != 1 {
		t.Fatalf("expected stored message, got %d", len(msgs))
	}
}
