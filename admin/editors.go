package admin

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/rpupo63/devfolio-backend/services"
	"github.com/rpupo63/devfolio-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Upload is an image chosen in an editor.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Editor saves one collection entity from its form.
type Editor[T any] struct {
	collection *services.Collection[T]
}

func NewEditor[T any](collection *services.Collection[T]) *Editor[T] {
	return &Editor[T]{collection: collection}
}

func (e *Editor[T]) Create(ctx context.Context, form Form[T]) (*T, error) {
	row := new(T)
	if err := Bind(form, row); err != nil {
		return nil, err
	}
	if err := e.collection.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Update loads the current record, applies the form to it and writes it back.
func (e *Editor[T]) Update(ctx context.Context, id uuid.UUID, form Form[T]) (*T, error) {
	row, err := e.collection.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Bind(form, row); err != nil {
		return nil, err
	}
	if err := e.collection.Update(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (e *Editor[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return e.collection.Delete(ctx, id)
}

// ProjectEditor saves projects together with an optional new thumbnail. The thumbnail is
// uploaded first and a failed upload abandons the save.
type ProjectEditor struct {
	*Editor[models.Project]
	store  storage.Store
	now    func() time.Time
	logger zerolog.Logger
}

func NewProjectEditor(projects *services.Collection[models.Project], store storage.Store) *ProjectEditor {
	return &ProjectEditor{
		Editor: NewEditor(projects),
		store:  store,
		now:    time.Now,
		logger: log.With().Str("editor", "projects").Logger(),
	}
}

// UploadThumbnail stores the image under a time-prefixed name and returns its public URL. A
// same-named object is overwritten.
func (e *ProjectEditor) UploadThumbnail(ctx context.Context, upload Upload) (string, error) {
	if err := storage.ValidateImage(upload.ContentType, upload.Size); err != nil {
		return "", err
	}
	objectPath := storage.ThumbnailPath(e.now(), upload.Filename)
	if err := e.store.Upload(ctx, storage.ThumbnailBucket, objectPath, upload.Body, upload.ContentType, true); err != nil {
		e.logger.Error().Err(err).Str("path", objectPath).Msg("thumbnail upload failed")
		return "", err
	}
	return e.store.PublicURL(storage.ThumbnailBucket, objectPath), nil
}

func (e *ProjectEditor) CreateWithThumbnail(ctx context.Context, form *ProjectForm, thumbnail *Upload) (*models.Project, error) {
	if err := e.attachThumbnail(ctx, form, thumbnail); err != nil {
		return nil, err
	}
	return e.Create(ctx, form)
}

func (e *ProjectEditor) UpdateWithThumbnail(ctx context.Context, id uuid.UUID, form *ProjectForm, thumbnail *Upload) (*models.Project, error) {
	if err := e.attachThumbnail(ctx, form, thumbnail); err != nil {
		return nil, err
	}
	return e.Update(ctx, id, form)
}

func (e *ProjectEditor) attachThumbnail(ctx context.Context, form *ProjectForm, thumbnail *Upload) error {
	if thumbnail == nil {
		return nil
	}
	// Required fields are checked before anything is uploaded.
	form.Normalize()
	if err := form.Validate(); err != nil {
		return err
	}
	url, err := e.UploadThumbnail(ctx, *thumbnail)
	if err != nil {
		return err
	}
	form.ThumbnailURL = url
	return nil
}

// ProfileEditor edits the singleton profile and its avatar.
type ProfileEditor struct {
	profiles *services.ProfileService
	store    storage.Store
	logger   zerolog.Logger
}

func NewProfileEditor(profiles *services.ProfileService, store storage.Store) *ProfileEditor {
	return &ProfileEditor{
		profiles: profiles,
		store:    store,
		logger:   log.With().Str("editor", "profile").Logger(),
	}
}

// Save creates the profile for userID when none exists yet, otherwise updates it.
func (e *ProfileEditor) Save(ctx context.Context, userID uuid.UUID, form *ProfileForm) (*models.Profile, error) {
	current, err := e.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		profile := &models.Profile{UserID: userID}
		if err := Bind[models.Profile](form, profile); err != nil {
			return nil, err
		}
		if err := e.profiles.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	// The cached profile is shared with readers.
	profile := *current
	if err := Bind[models.Profile](form, &profile); err != nil {
		return nil, err
	}
	if err := e.profiles.Update(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UploadAvatar overwrites the user's avatar object and stores its URL on the profile.
func (e *ProfileEditor) UploadAvatar(ctx context.Context, userID uuid.UUID, upload Upload) (*models.Profile, error) {
	if err := storage.ValidateImage(upload.ContentType, upload.Size); err != nil {
		return nil, err
	}
	current, err := e.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errs.NewNotFound("profile")
	}

	objectPath := storage.AvatarPath(userID.String(), upload.Filename)
	if err := e.store.Upload(ctx, storage.AvatarBucket, objectPath, upload.Body, upload.ContentType, true); err != nil {
		e.logger.Error().Err(err).Str("path", objectPath).Msg("avatar upload failed")
		return nil, err
	}
	return e.profiles.SetAvatar(ctx, current.ID, e.store.PublicURL(storage.AvatarBucket, objectPath))
}
