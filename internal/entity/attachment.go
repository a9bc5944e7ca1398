package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Attachment struct {
	ID         uuid.UUID `json:"id"`
	IssueID    uuid.UUID `json:"issue_id"`
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type"`
	StorageRef string    `json:"storage_ref"`
	UploadedBy uuid.UUID `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// AttachmentWithRelations carries best-effort embeds: a dangling
// reference (deleted issue, uploader or project) leaves the embed nil
// instead of excluding the attachment.
type AttachmentWithRelations struct {
	Attachment
	Issue    *Task                `json:"issue"`
	Uploader *User                `json:"uploader"`
	Project  *ConstructionProject `json:"project"`
}

type FileTypeBucket string

const (
	FileTypeImage       FileTypeBucket = "image"
	FileTypePDF         FileTypeBucket = "pdf"
	FileTypeDocument    FileTypeBucket = "document"
	FileTypeSpreadsheet FileTypeBucket = "spreadsheet"
	FileTypeVideo       FileTypeBucket = "video"
	FileTypeOther       FileTypeBucket = "other"
)

// BucketForMime maps a mime type onto the catalog's coarse type
// buckets.
func BucketForMime(mimeType string) FileTypeBucket {
	mt := strings.ToLower(mimeType)

	switch {
	case strings.HasPrefix(mt, "image/"):
		return FileTypeImage
	case mt == "application/pdf":
		return FileTypePDF
	case strings.HasPrefix(mt, "video/"):
		return FileTypeVideo
	case strings.Contains(mt, "spreadsheet"), strings.Contains(mt, "excel"), mt == "text/csv":
		return FileTypeSpreadsheet
	case strings.HasPrefix(mt, "text/"),
		strings.Contains(mt, "word"),
		strings.Contains(mt, "opendocument.text"),
		mt == "application/rtf":
		return FileTypeDocument
	}

	return FileTypeOther
}

type AttachmentFilter struct {
	Limit      uint64
	Cursor     *time.Time // last seen uploaded_at, exclusive
	Search     string     // file name substring
	FileType   FileTypeBucket
	UploaderID *uuid.UUID
	IssueID    *uuid.UUID
	ProjectID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

type AttachmentPage struct {
	Items      []AttachmentWithRelations `json:"items"`
	NextCursor *time.Time                `json:"next_cursor,omitempty"`
}

type AttachmentStats struct {
	TotalCount   int                    `json:"total_count"`
	TotalSize    int64                  `json:"total_size"`
	ByType       map[FileTypeBucket]int `json:"by_type"`
	RecentUpload int                    `json:"recent_uploads"` // trailing 7 days
}
