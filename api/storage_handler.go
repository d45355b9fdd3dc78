package api

import (
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/devfolio-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// storageHandler serves uploaded objects when the configured store keeps them locally.
type storageHandler struct {
	responder Responder
	logger    zerolog.Logger
	opener    storage.Opener
}

func newStorageHandler(store storage.Store) storageHandler {
	logger := log.With().Str("handlerName", "storageHandler").Logger()
	opener, _ := store.(storage.Opener)

	return storageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		opener:    opener,
	}
}

func (h storageHandler) enabled() bool {
	return h.opener != nil
}

// getObject streams a public object
// @Summary Get stored object
// @Tags Storage
// @Param bucket path string true "Bucket"
// @Param path path string true "Object path"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /storage/v1/object/public/{bucket}/{path} [get]
func (h storageHandler) getObject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bucket := chi.URLParam(r, "bucket")
		objectPath := path.Clean("/" + chi.URLParam(r, "*"))[1:]

		rc, err := h.opener.Open(r.Context(), bucket, objectPath)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer rc.Close()

		if ct := mime.TypeByExtension(path.Ext(objectPath)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Header().Set("Cache-Control", "max-age=3600")
		if _, err := io.Copy(w, rc); err != nil {
			h.logger.Warn().Err(err).Str("path", objectPath).Msg("error streaming object")
		}
	}
}
