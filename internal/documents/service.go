package documents

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/types"
)

type objectStore interface {
	Upload(ctx context.Context, bucket, object, contentType string, data []byte) error
	SignedURL(bucket, object string, expires time.Duration) (string, error)
}

// Service exposes document upload and display-URL semantics for the
// onboarding wizard.
type Service interface {
	Upload(ctx context.Context, ownerID uuid.UUID, kind enums.DocumentKind, file *types.PendingFile) (*UploadOutput, error)
	DisplayURL(ctx context.Context, fileKey string) (string, error)
}

type service struct {
	store          objectStore
	bucket         string
	maxUploadBytes int64
	displayTTL     time.Duration
}

// NewService constructs a documents service backed by the provided object store.
func NewService(store objectStore, bucket string, maxUploadBytes int64, displayTTL time.Duration) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("object store required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("bucket required")
	}
	if maxUploadBytes <= 0 {
		return nil, fmt.Errorf("max upload size must be positive")
	}
	if displayTTL <= 0 {
		return nil, fmt.Errorf("display url ttl must be positive")
	}
	return &service{
		store:          store,
		bucket:         bucket,
		maxUploadBytes: maxUploadBytes,
		displayTTL:     displayTTL,
	}, nil
}

// UploadOutput is returned to the wizard after a successful upload.
type UploadOutput struct {
	FileKey  string `json:"file_key"`
	FileName string `json:"file_name"`
}

var mimeTypesByKind = map[enums.DocumentKind][]string{
	enums.DocumentKindLogo:             {"image/png", "image/jpeg", "image/webp"},
	enums.DocumentKindFrontID:          {"image/png", "image/jpeg", "image/webp"},
	enums.DocumentKindBackID:           {"image/png", "image/jpeg", "image/webp"},
	enums.DocumentKindCertOfIncorp:     {"application/pdf", "image/png", "image/jpeg"},
	enums.DocumentKindBusinessLicense:  {"application/pdf", "image/png", "image/jpeg"},
	enums.DocumentKindArticlesOfIncorp: {"application/pdf", "image/png", "image/jpeg"},
	enums.DocumentKindUtilityBill:      {"application/pdf", "image/png", "image/jpeg"},
}

func (s *service) Upload(ctx context.Context, ownerID uuid.UUID, kind enums.DocumentKind, file *types.PendingFile) (*UploadOutput, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner identity missing")
	}
	if kind == "" || !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid document kind")
	}
	if file == nil || len(file.Content) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file content is required")
	}

	fileName := strings.TrimSpace(file.FileName)
	if fileName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
	}

	size := int64(len(file.Content))
	if size > s.maxUploadBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("file must be at most %d bytes", s.maxUploadBytes))
	}

	// the declared mime is advisory; sniff the actual content
	mimeType := mimetype.Detect(file.Content).String()
	if !isAllowedMime(kind, mimeType) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file type not allowed for document kind").
			WithDetails(map[string]any{"kind": kind.String(), "detected": mimeType})
	}

	key := buildObjectKey(kind, ownerID, fileName)

	if err := s.store.Upload(ctx, s.bucket, key, mimeType, file.Content); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "uploading document")
	}

	return &UploadOutput{FileKey: key, FileName: fileName}, nil
}

func (s *service) DisplayURL(ctx context.Context, fileKey string) (string, error) {
	if strings.TrimSpace(fileKey) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "file key is required")
	}
	url, err := s.store.SignedURL(s.bucket, fileKey, s.displayTTL)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "signing display url")
	}
	return url, nil
}

func isAllowedMime(kind enums.DocumentKind, mimeType string) bool {
	allowed, ok := mimeTypesByKind[kind]
	if !ok || len(allowed) == 0 {
		return true
	}
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, mimeType) {
			return true
		}
	}
	return false
}

func buildObjectKey(kind enums.DocumentKind, ownerID uuid.UUID, fileName string) string {
	cleanName := sanitizeFileName(fileName)
	id := uuid.New()
	if cleanName == "" {
		cleanName = id.String()
	}
	return fmt.Sprintf("documents/%s/%s/%s/%s", ownerID.String(), kind, id.String(), cleanName)
}

func sanitizeFileName(name string) string {
	if name == "" {
		return ""
	}
	clean := path.Base(strings.TrimSpace(name))
	if clean == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		switch {
		case r == '/' || r == '\\' || unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-_.")
}
