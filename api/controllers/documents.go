package controllers

import (
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/api/middleware"
	"github.com/giftdash/giftdash-backend/api/responses"
	"github.com/giftdash/giftdash-backend/internal/documents"
	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
	"github.com/giftdash/giftdash-backend/pkg/types"
)

// DocumentUpload streams a multipart file into object storage and returns the
// stored key. The service re-sniffs the content type, so the declared mime is
// advisory only.
func DocumentUpload(svc documents.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "document service unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1024)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart payload"))
			return
		}

		kind, err := enums.ParseDocumentKind(strings.TrimSpace(r.FormValue("kind")))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid document kind"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file part is required"))
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "reading file part"))
			return
		}

		output, err := svc.Upload(ctx, userID, kind, &types.PendingFile{
			FileName:  header.Filename,
			MimeType:  header.Header.Get("Content-Type"),
			SizeBytes: int64(len(content)),
			Content:   content,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, output)
	}
}

// DocumentDisplayURL returns a short-lived signed URL for a stored document.
func DocumentDisplayURL(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "document service unavailable"))
			return
		}

		fileKey := strings.TrimSpace(r.URL.Query().Get("file_key"))
		url, err := svc.DisplayURL(ctx, fileKey)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"url": url})
	}
}
