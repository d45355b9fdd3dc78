package admin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/auth"
	"github.com/rpupo63/devfolio-backend/cache"
	"github.com/rpupo63/devfolio-backend/database"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/rpupo63/devfolio-backend/services"
	"github.com/rpupo63/devfolio-backend/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServices(t *testing.T) *services.Services {
	t.Helper()
	db, err := database.Open(map[string]string{
		"DB_TYPE":     "sqlite",
		"SQLITE_PATH": fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return services.New(database.New(db), cache.New(time.Minute))
}

type failingStore struct{}

func (failingStore) Upload(ctx context.Context, bucket, objectPath string, body io.Reader, contentType string, upsert bool) error {
	return errs.NewUploadError(bucket, objectPath, errors.New("bucket not found"))
}

func (failingStore) PublicURL(bucket, objectPath string) string {
	return "https://example.invalid/" + bucket + "/" + objectPath
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"React", "TypeScript", "Node.js"}, ParseTags("React, TypeScript,  Node.js"))
	assert.Equal(t, []string{"Go", "Go"}, ParseTags("Go,,Go, "))
	assert.Empty(t, ParseTags(" , "))
	assert.Equal(t, "React, TypeScript", JoinTags([]string{"React", "TypeScript"}))
}

func TestRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		form  interface{ Validate() error }
		field string
	}{
		{"project title", &ProjectForm{}, "title"},
		{"social platform", &SocialLinkForm{URL: "https://x.com"}, "platform"},
		{"social url", &SocialLinkForm{Platform: "X"}, "url"},
		{"experience company", &ExperienceForm{Position: "Engineer"}, "company"},
		{"experience position", &ExperienceForm{Company: "Acme"}, "position"},
		{"education institution", &EducationForm{Degree: "BSc"}, "institution"},
		{"education degree", &EducationForm{Institution: "MIT"}, "degree"},
		{"certification title", &CertificationForm{Issuer: "AWS"}, "title"},
		{"certification issuer", &CertificationForm{Title: "SAA"}, "issuer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			require.Error(t, err)
			assert.True(t, errs.IsMissingRequiredFieldError(err))

			var apiErr *errs.ApiErr
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.field, apiErr.Field)
		})
	}
}

func TestWhitespaceOnlyIsMissing(t *testing.T) {
	form := &ProjectForm{Title: "   "}
	err := Bind[models.Project](form, &models.Project{})
	assert.True(t, errs.IsMissingRequiredFieldError(err))
}

func TestProjectFormApply(t *testing.T) {
	form := &ProjectForm{
		Title:         "  Portfolio ",
		Description:   "   ",
		TechStackTags: "React, TypeScript,  Node.js",
		GithubURL:     "https://github.com/x/portfolio",
	}
	var project models.Project
	require.NoError(t, Bind[models.Project](form, &project))

	assert.Equal(t, "Portfolio", project.Title)
	assert.Nil(t, project.Description)
	assert.Nil(t, project.DemoURL)
	require.NotNil(t, project.GithubURL)
	assert.Equal(t, []string{"React", "TypeScript", "Node.js"}, []string(project.TechStackTags))

	seeded := ProjectFormFrom(&project)
	assert.Equal(t, "React, TypeScript, Node.js", seeded.TechStackTags)
	assert.Equal(t, "", seeded.Description)
}

func TestExperienceFormDates(t *testing.T) {
	form := &ExperienceForm{Company: "Acme", Position: "Engineer", StartDate: "2021-03-01", EndDate: "2023-01-31"}
	var exp models.Experience
	require.NoError(t, Bind[models.Experience](form, &exp))
	assert.Equal(t, "2021-03-01", formatDate(exp.StartDate))
	assert.Equal(t, "2023-01-31", formatDate(exp.EndDate))

	current := &ExperienceForm{Company: "Acme", Position: "Lead", StartDate: "2023-02-01", EndDate: "2024-01-01", IsCurrent: true}
	require.NoError(t, Bind[models.Experience](current, &exp))
	assert.Nil(t, exp.EndDate)
	assert.True(t, exp.IsCurrent)

	bad := &ExperienceForm{Company: "Acme", Position: "Engineer", StartDate: "March 2021"}
	err := Bind[models.Experience](bad, &exp)
	assert.True(t, errs.IsInvalidFieldError(err))
}

func TestSocialLinkFormIconFallback(t *testing.T) {
	form := &SocialLinkForm{Platform: "Mastodon", URL: "https://hachyderm.io/@x", Icon: "mastodon"}
	var link models.SocialLink
	require.NoError(t, Bind[models.SocialLink](form, &link))
	assert.Equal(t, models.IconLink, link.Icon)
}

func TestEditorCreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc := setupServices(t)
	editor := NewEditor(svc.Certifications)

	cert, err := editor.Create(ctx, &CertificationForm{Title: "SAA", Issuer: "AWS", IssueDate: "2024-05-01"})
	require.NoError(t, err)

	list, err := svc.Certifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	form := CertificationFormFrom(cert)
	form.Title = "Solutions Architect Associate"
	_, err = editor.Update(ctx, cert.ID, &form)
	require.NoError(t, err)

	list, err = svc.Certifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Solutions Architect Associate", list[0].Title)
	assert.Equal(t, "2024-05-01", formatDate(list[0].IssueDate))

	require.NoError(t, editor.Delete(ctx, cert.ID))
	list, err = svc.Certifications.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProjectEditorThumbnail(t *testing.T) {
	ctx := context.Background()
	svc := setupServices(t)
	memFs := afero.NewMemMapFs()
	editor := NewProjectEditor(svc.Projects, storage.NewAferoStore(memFs, "http://localhost:8080"))
	editor.now = func() time.Time { return time.UnixMilli(1700000000000) }

	project, err := editor.CreateWithThumbnail(ctx, &ProjectForm{Title: "Portfolio"}, &Upload{
		Filename:    "shot.png",
		ContentType: "image/png",
		Size:        3,
		Body:        strings.NewReader("png"),
	})
	require.NoError(t, err)
	require.NotNil(t, project.ThumbnailURL)
	assert.Equal(t, "http://localhost:8080/storage/v1/object/public/project-thumbnails/1700000000000-shot.png", *project.ThumbnailURL)

	exists, err := afero.Exists(memFs, "project-thumbnails/1700000000000-shot.png")
	require.NoError(t, err)
	assert.True(t, exists)

	// Two uploads in the same millisecond with the same name: the later one wins.
	url, err := editor.UploadThumbnail(ctx, Upload{
		Filename:    "shot.png",
		ContentType: "image/png",
		Size:        5,
		Body:        strings.NewReader("png-2"),
	})
	require.NoError(t, err)
	assert.Equal(t, *project.ThumbnailURL, url)
	data, err := afero.ReadFile(memFs, "project-thumbnails/1700000000000-shot.png")
	require.NoError(t, err)
	assert.Equal(t, "png-2", string(data))
}

func TestProjectEditorUploadFailureAbortsSave(t *testing.T) {
	ctx := context.Background()
	svc := setupServices(t)
	editor := NewProjectEditor(svc.Projects, failingStore{})

	_, err := editor.CreateWithThumbnail(ctx, &ProjectForm{Title: "Portfolio"}, &Upload{
		Filename:    "shot.png",
		ContentType: "image/png",
		Size:        3,
		Body:        strings.NewReader("png"),
	})
	assert.True(t, errs.IsUploadError(err))

	projects, err := svc.Projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProfileEditor(t *testing.T) {
	ctx := context.Background()
	svc := setupServices(t)
	memFs := afero.NewMemMapFs()
	editor := NewProfileEditor(svc.Profile, storage.NewAferoStore(memFs, "https://abc.supabase.co"))
	userID := uuid.New()

	_, err := editor.UploadAvatar(ctx, userID, Upload{Filename: "me.jpg", ContentType: "image/jpeg", Size: 1, Body: strings.NewReader("j")})
	assert.True(t, errs.IsNotFound(err))

	profile, err := editor.Save(ctx, userID, &ProfileForm{Name: "Ada", TechStack: "Go, Rust"})
	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)

	profile, err = editor.Save(ctx, userID, &ProfileForm{Name: "Ada Lovelace", GithubUsername: " ada "})
	require.NoError(t, err)
	assert.Equal(t, "ada", profile.GithubUsername)
	assert.Empty(t, profile.TechStack)

	profile, err = editor.UploadAvatar(ctx, userID, Upload{Filename: "me.JPG", ContentType: "image/jpeg", Size: 1, Body: strings.NewReader("j")})
	require.NoError(t, err)
	require.NotNil(t, profile.AvatarURL)
	assert.Equal(t, "https://abc.supabase.co/storage/v1/object/public/avatars/"+userID.String()+"/avatar.jpg", *profile.AvatarURL)

	stored, err := svc.Profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", stored.Name)
	require.NotNil(t, stored.AvatarURL)
}

func TestSettingsTabs(t *testing.T) {
	settings := NewSettings(&auth.Session{UserID: uuid.New(), Email: "ada@example.com", IsAdmin: true})

	ids := make([]string, 0, len(settings.Tabs))
	for _, tab := range settings.Tabs {
		ids = append(ids, tab.ID)
	}
	assert.Equal(t, []string{"profile", "experience", "education", "certifications", "projects", "social"}, ids)
	assert.Equal(t, "profile", settings.DefaultTab)
	assert.Equal(t, Account{Email: "ada@example.com", Role: "admin"}, settings.Account)
}
