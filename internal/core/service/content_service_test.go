package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

type stubFileStore struct {
	seq     int
	saved   []string
	removed []string
}

func (f *stubFileStore) Save(category string, upload ports.FileUpload) (string, error) {
	f.seq++
	name := fmt.Sprintf("stored-%d%s", f.seq, ext(upload.Filename))
	f.saved = append(f.saved, category+"/"+name)
	return name, nil
}

func (f *stubFileStore) Remove(category, filename string) error {
	f.removed = append(f.removed, category+"/"+filename)
	return nil
}

func (f *stubFileStore) Path(category, filename string) string {
	return "/uploads/" + category + "/" + filename
}

func ext(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

type stubProjectRepo struct {
	seq      int
	projects map[string]*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) List(context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("p%d", r.seq)
	r.projects[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *stubProjectRepo) Count(context.Context) (int64, error) {
	return int64(len(r.projects)), nil
}

type stubMessageRepo struct {
	messages []domain.Message
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	clone := *m
	clone.ID = fmt.Sprintf("m%d", len(r.messages)+1)
	r.messages = append([]domain.Message{clone}, r.messages...)
	return &clone, nil
}

func (r *stubMessageRepo) List(context.Context) ([]domain.Message, error) {
	return append([]domain.Message(nil), r.messages...), nil
}

func (r *stubMessageRepo) Count(context.Context) (int64, error) {
	return int64(len(r.messages)), nil
}

// countRepo satisfies the skill and certificate repositories for tests that
// only exercise counting.
type countRepo struct {
	n int64
}

func (r *countRepo) Count(context.Context) (int64, error) { return r.n, nil }

type stubSkillRepo struct{ countRepo }

func (r *stubSkillRepo) List(context.Context) ([]domain.Skill, error) { return nil, nil }
func (r *stubSkillRepo) FindByID(context.Context, string) (*domain.Skill, error) {
	return nil, domain.ErrSkillNotFound
}
func (r *stubSkillRepo) Create(_ context.Context, s *domain.Skill) (*domain.Skill, error) {
	return s, nil
}
func (r *stubSkillRepo) Update(context.Context, *domain.Skill) error { return nil }
func (r *stubSkillRepo) Delete(context.Context, string) error        { return nil }

type stubCertificateRepo struct{ countRepo }

func (r *stubCertificateRepo) List(context.Context) ([]domain.Certificate, error) { return nil, nil }
func (r *stubCertificateRepo) FindByID(context.Context, string) (*domain.Certificate, error) {
	return nil, domain.ErrCertificateNotFound
}
func (r *stubCertificateRepo) Create(_ context.Context, c *domain.Certificate) (*domain.Certificate, error) {
	return c, nil
}
func (r *stubCertificateRepo) Update(context.Context, *domain.Certificate) error { return nil }
func (r *stubCertificateRepo) Delete(context.Context, string) error              { return nil }

func newTestContentService(projects *stubProjectRepo, files *stubFileStore, messages *stubMessageRepo) *ContentService {
	if messages == nil {
		messages = &stubMessageRepo{}
	}
	return NewContentService(
		projects,
		&stubSkillRepo{},
		&stubCertificateRepo{},
		nil,
		nil,
		messages,
		files,
		zerolog.Nop(),
	)
}

func TestContentService_CreateProject_WithImage(t *testing.T) {
	projects := newStubProjectRepo()
	files := &stubFileStore{}
	svc := newTestContentService(projects, files, nil)

	created, err := svc.CreateProject(context.Background(), ports.ProjectInput{
		Title:       "Tracker",
		Description: "A thing",
		Link:        "https://example.com",
		Image:       &ports.FileUpload{Filename: "shot.png", Reader: strings.NewReader("img")},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if created.Image != "stored-1.png" {
		t.Fatalf("expected stored image name, got %q", created.Image)
	}
	if len(files.saved) != 1 || files.saved[0] != "projects/stored-1.png" {
		t.Fatalf("unexpected saves: %v", files.saved)
	}
}

func TestContentService_UpdateProject_ReplacesImage(t *testing.T) {
	projects := newStubProjectRepo()
	files := &stubFileStore{}
	svc := newTestContentService(projects, files, nil)

	created, err := svc.CreateProject(context.Background(), ports.ProjectInput{
		Title: "Tracker",
		Image: &ports.FileUpload{Filename: "old.png", Reader: strings.NewReader("a")},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateProject(context.Background(), created.ID, ports.ProjectInput{
		Title: "Tracker v2",
		Image: &ports.FileUpload{Filename: "new.jpg", Reader: strings.NewReader("b")},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Image != "stored-2.jpg" {
		t.Fatalf("expected new image, got %q", updated.Image)
	}
	if len(files.removed) != 1 || files.removed[0] != "projects/stored-1.png" {
		t.Fatalf("expected old image removed, got %v", files.removed)
	}
}

func TestContentService_UpdateProject_KeepsImageWhenNoUpload(t *testing.T) {
	projects := newStubProjectRepo()
	files := &stubFileStore{}
	svc := newTestContentService(projects, files, nil)

	created, err := svc.CreateProject(context.Background(), ports.ProjectInput{
		Title: "Tracker",
		Image: &ports.FileUpload{Filename: "shot.png", Reader: strings.NewReader("a")},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateProject(context.Background(), created.ID, ports.ProjectInput{Title: "Renamed"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Image != created.Image {
		t.Fatalf("image changed without an upload: %q -> %q", created.Image, updated.Image)
	}
	if len(files.removed) != 0 {
		t.Fatalf("no file should be removed, got %v", files.removed)
	}
}

func TestContentService_DeleteProject_RemovesImage(t *testing.T) {
	projects := newStubProjectRepo()
	files := &stubFileStore{}
	svc := newTestContentService(projects, files, nil)

	created, err := svc.CreateProject(context.Background(), ports.ProjectInput{
		Title: "Tracker",
		Image: &ports.FileUpload{Filename: "shot.png", Reader: strings.NewReader("a")},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteProject(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.UpdateProject(context.Background(), created.ID, ports.ProjectInput{}); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound after delete, got %v", err)
	}
	if len(files.removed) != 1 || files.removed[0] != "projects/stored-1.png" {
		t.Fatalf("expected image removed with project, got %v", files.removed)
	}
}

func TestContentService_DeleteProject_Missing(t *testing.T) {
	svc := newTestContentService(newStubProjectRepo(), &stubFileStore{}, nil)

	if err := svc.DeleteProject(context.Background(), "missing"); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestContentService_DashboardCounts(t *testing.T) {
	projects := newStubProjectRepo()
	messages := &stubMessageRepo{}
	svc := NewContentService(
		projects,
		&stubSkillRepo{countRepo{n: 4}},
		&stubCertificateRepo{countRepo{n: 2}},
		nil,
		nil,
		messages,
		&stubFileStore{},
		zerolog.Nop(),
	)

	if _, err := svc.CreateProject(context.Background(), ports.ProjectInput{Title: "One"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := messages.Create(context.Background(), &domain.Message{Name: "v", Email: "v@x.com", Body: "hi"}); err != nil {
		t.Fatalf("message create failed: %v", err)
	}

	p, s, c, m, err := svc.DashboardCounts(context.Background())
	if err != nil {
		t.Fatalf("counts failed: %v", err)
	}
	if p != 1 || s != 4 || c != 2 || m != 1 {
		t.Fatalf("unexpected counts: projects=%d skills=%d certificates=%d messages=%d", p, s, c, m)
	}
}
