package types

import "strings"

// PendingFile is a not-yet-uploaded document held in memory: the raw bytes
// plus the metadata needed to store it.
type PendingFile struct {
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
	Content   []byte `json:"content"`
}

// FileRef points at a document either before upload (Pending holds the bytes)
// or after upload (RemoteKey holds the storage key). A ref with neither set is
// empty.
type FileRef struct {
	Pending   *PendingFile `json:"pending,omitempty"`
	RemoteKey string       `json:"remote_key,omitempty"`
}

// IsSet reports whether the ref points at anything, local or remote.
func (f FileRef) IsSet() bool {
	return f.Pending != nil || strings.TrimSpace(f.RemoteKey) != ""
}

// IsUploaded reports whether the ref already has a remote storage key.
func (f FileRef) IsUploaded() bool {
	return strings.TrimSpace(f.RemoteKey) != ""
}
