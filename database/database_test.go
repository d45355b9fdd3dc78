package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database with every table migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, models.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string {
	return &s
}

func date(y int, m time.Month, d int) *datatypes.Date {
	v := datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &v
}

func TestProjectRepo(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t)).ProjectRepo()

	t.Run("create then read returns submitted fields", func(t *testing.T) {
		p := &models.Project{
			Title:         "Dashboard",
			Description:   strPtr("Portfolio dashboard"),
			TechStackTags: []string{"React", "TypeScript", "React"},
			GithubURL:     strPtr("https://github.com/me/dashboard"),
			DisplayOrder:  2,
		}
		require.NoError(t, repo.Add(ctx, p))
		assert.NotEqual(t, uuid.Nil, p.ID)

		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dashboard", got.Title)
		assert.Equal(t, "Portfolio dashboard", *got.Description)
		assert.Equal(t, []string{"React", "TypeScript", "React"}, []string(got.TechStackTags))
		assert.Equal(t, "https://github.com/me/dashboard", *got.GithubURL)
		assert.Nil(t, got.DemoURL)
		assert.Equal(t, 2, got.DisplayOrder)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("list orders by display order then newest", func(t *testing.T) {
		first := &models.Project{Title: "First", DisplayOrder: 0}
		require.NoError(t, repo.Add(ctx, first))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "First", all[0].Title)
		assert.Equal(t, "Dashboard", all[1].Title)
	})

	t.Run("update overwrites optional fields", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		target := all[1]
		target.Description = nil
		target.TechStackTags = []string{"Go"}

		require.NoError(t, repo.Update(ctx, target))

		got, err := repo.FindByID(ctx, target.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Description)
		assert.Equal(t, []string{"Go"}, []string(got.TechStackTags))
	})

	t.Run("update of missing row is not found", func(t *testing.T) {
		err := repo.Update(ctx, &models.Project{ID: uuid.New(), Title: "ghost"})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("delete then read no longer includes the id", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		id := all[0].ID

		require.NoError(t, repo.Delete(ctx, id))

		_, err = repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		rest, err := repo.FindAll(ctx)
		require.NoError(t, err)
		for _, p := range rest {
			assert.NotEqual(t, id, p.ID)
		}

		assert.ErrorIs(t, repo.Delete(ctx, id), gorm.ErrRecordNotFound)
	})
}

func TestProfileRepo(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t)).ProfileRepo()

	none, err := repo.FindFirst(ctx)
	require.NoError(t, err)
	assert.Nil(t, none, "missing profile is not an error")

	owner := uuid.New()
	p := &models.Profile{UserID: owner, Name: "Ada", TechStack: []string{"Go"}, GithubUsername: "ada"}
	require.NoError(t, repo.Add(ctx, p))

	got, err := repo.FindFirst(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.Name)

	got.Bio = "Writes compilers"
	got.AvatarURL = strPtr("https://cdn/avatar.png")
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Writes compilers", updated.Bio)
	assert.Equal(t, "https://cdn/avatar.png", *updated.AvatarURL)
	assert.Equal(t, got.CreatedAt.Unix(), updated.CreatedAt.Unix())

	err = repo.Add(ctx, &models.Profile{UserID: uuid.New(), Name: "Grace"})
	require.Error(t, err, "the table holds a single profile")
	assert.True(t, errs.IsConflict(errs.NewDatabaseError("create", "profile", err)))
}

func TestCollectionRepos(t *testing.T) {
	ctx := context.Background()
	d := New(setupTestDB(t))

	t.Run("social links default unknown icons to link", func(t *testing.T) {
		repo := d.SocialLinkRepo()
		require.NoError(t, repo.Add(ctx, &models.SocialLink{Platform: "Blog", URL: "https://blog.dev", Icon: "rss", DisplayOrder: 1}))
		require.NoError(t, repo.Add(ctx, &models.SocialLink{Platform: "GitHub", URL: "https://github.com/me", Icon: models.IconGithub}))

		links, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "GitHub", links[0].Platform)
		assert.Equal(t, models.IconLink, links[1].Icon)
	})

	t.Run("experience newest first and current has no end", func(t *testing.T) {
		repo := d.ExperienceRepo()
		require.NoError(t, repo.Add(ctx, &models.Experience{Company: "Old", Position: "Dev", StartDate: date(2018, 1, 1), EndDate: date(2020, 1, 1)}))
		require.NoError(t, repo.Add(ctx, &models.Experience{Company: "New", Position: "Lead", StartDate: date(2021, 3, 1), EndDate: date(2022, 1, 1), IsCurrent: true}))

		rows, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "New", rows[0].Company)
		assert.Nil(t, rows[0].EndDate)
		assert.NotNil(t, rows[1].EndDate)
	})

	t.Run("education and certifications round trip", func(t *testing.T) {
		edu := &models.Education{Institution: "WGU", Degree: "BSc", FieldOfStudy: strPtr("CS"), StartDate: date(2019, 9, 1)}
		require.NoError(t, d.EducationRepo().Add(ctx, edu))
		gotEdu, err := d.EducationRepo().FindByID(ctx, edu.ID)
		require.NoError(t, err)
		assert.Equal(t, "CS", *gotEdu.FieldOfStudy)

		cert := &models.Certification{Title: "CKA", Issuer: "CNCF", CredentialURL: strPtr("https://cred")}
		require.NoError(t, d.CertificationRepo().Add(ctx, cert))
		require.NoError(t, d.CertificationRepo().Delete(ctx, cert.ID))
		certs, err := d.CertificationRepo().FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, certs)
	})
}

func TestUserRoleRepo(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t)).UserRoleRepo()
	user := uuid.New()

	isAdmin, err := repo.HasRole(ctx, user, models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	require.NoError(t, repo.Grant(ctx, user, models.RoleAdmin))
	require.NoError(t, repo.Grant(ctx, user, models.RoleAdmin), "granting twice is a no-op")

	isAdmin, err = repo.HasRole(ctx, user, models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	require.NoError(t, repo.Revoke(ctx, user, models.RoleAdmin))
	isAdmin, err = repo.HasRole(ctx, user, models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
