package documents

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/types"
)

// tiny valid PNG header so mimetype sniffing sees an image
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

type stubStore struct {
	uploadErr   error
	signErr     error
	url         string
	lastBucket  string
	lastObject  string
	lastMime    string
	uploadCalls int
}

func (s *stubStore) Upload(_ context.Context, bucket, object, contentType string, _ []byte) error {
	s.uploadCalls++
	s.lastBucket = bucket
	s.lastObject = object
	s.lastMime = contentType
	return s.uploadErr
}

func (s *stubStore) SignedURL(bucket, object string, _ time.Duration) (string, error) {
	s.lastBucket = bucket
	s.lastObject = object
	if s.signErr != nil {
		return "", s.signErr
	}
	return s.url, nil
}

func newTestService(t *testing.T, store *stubStore) Service {
	t.Helper()
	svc, err := NewService(store, "bucket", 1024*1024, time.Minute)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestUploadSuccess(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	svc := newTestService(t, store)

	out, err := svc.Upload(context.Background(), uuid.New(), enums.DocumentKindLogo, &types.PendingFile{
		FileName: "My Logo.png",
		MimeType: "image/png",
		Content:  pngBytes,
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if out.FileName != "My Logo.png" {
		t.Fatalf("unexpected file name %q", out.FileName)
	}
	if !strings.HasPrefix(store.lastObject, "documents/") {
		t.Fatalf("unexpected object key %q", store.lastObject)
	}
	if !strings.HasSuffix(store.lastObject, "My-Logo.png") {
		t.Fatalf("expected sanitized name in key, got %q", store.lastObject)
	}
	if store.lastMime != "image/png" {
		t.Fatalf("expected sniffed image/png, got %q", store.lastMime)
	}
}

func TestUploadRejectsWrongMimeForKind(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	svc := newTestService(t, store)

	// plain text content, sniffed as text/plain, not allowed for front_id
	_, err := svc.Upload(context.Background(), uuid.New(), enums.DocumentKindFrontID, &types.PendingFile{
		FileName: "id.txt",
		Content:  []byte("not an image"),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if store.uploadCalls != 0 {
		t.Fatal("upload must not be attempted for rejected files")
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	svc, err := NewService(store, "bucket", 8, time.Minute)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Upload(context.Background(), uuid.New(), enums.DocumentKindLogo, &types.PendingFile{
		FileName: "big.png",
		Content:  pngBytes,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadWrapsStoreFailure(t *testing.T) {
	t.Parallel()

	store := &stubStore{uploadErr: errors.New("gcs down")}
	svc := newTestService(t, store)

	_, err := svc.Upload(context.Background(), uuid.New(), enums.DocumentKindLogo, &types.PendingFile{
		FileName: "logo.png",
		Content:  pngBytes,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestDisplayURL(t *testing.T) {
	t.Parallel()

	store := &stubStore{url: "https://signed.example/doc"}
	svc := newTestService(t, store)

	url, err := svc.DisplayURL(context.Background(), "documents/a/b/c")
	if err != nil {
		t.Fatalf("display url: %v", err)
	}
	if url != "https://signed.example/doc" {
		t.Fatalf("unexpected url %q", url)
	}

	if _, err := svc.DisplayURL(context.Background(), "  "); err == nil {
		t.Fatal("expected validation error for empty key")
	}
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"logo.png", "logo.png"},
		{"My Logo.png", "My-Logo.png"},
		{"../../etc/passwd", "passwd"},
		{"  spaced name.pdf  ", "spaced-name.pdf"},
	}
	for _, tc := range cases {
		if got := sanitizeFileName(tc.in); got != tc.want {
			t.Fatalf("sanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
