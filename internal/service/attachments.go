package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/access"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/httpclients/storage"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	recentUploadsWindow = 7 * 24 * time.Hour
)

// AttachmentsPage returns one catalog page. The cursor is the last
// seen uploaded_at; every returned item is strictly older than it, and
// the next cursor is the oldest timestamp of the page.
func (s *Service) AttachmentsPage(ctx context.Context, filter entity.AttachmentFilter) (entity.AttachmentPage, error) {
	if filter.Limit == 0 {
		filter.Limit = defaultPageSize
	}

	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	if filter.FileType != "" {
		return s.attachmentsPageByType(ctx, filter)
	}

	items, err := s.repo.Attachments(ctx, filter)
	if err != nil {
		return entity.AttachmentPage{}, fmt.Errorf("list attachments: %w", err)
	}

	return buildPage(items, filter.Limit), nil
}

// attachmentsPageByType filters by the coarse type bucket. The bucket
// is derived from the mime type in Go, so the page is assembled by
// scanning forward until the limit fills or rows run out.
func (s *Service) attachmentsPageByType(ctx context.Context, filter entity.AttachmentFilter) (entity.AttachmentPage, error) {
	bucket := filter.FileType

	scan := filter
	scan.FileType = ""

	var matched []entity.AttachmentWithRelations

	for {
		items, err := s.repo.Attachments(ctx, scan)
		if err != nil {
			return entity.AttachmentPage{}, fmt.Errorf("list attachments: %w", err)
		}

		if len(items) == 0 {
			break
		}

		for _, item := range items {
			if entity.BucketForMime(item.MimeType) == bucket {
				matched = append(matched, item)
				if uint64(len(matched)) == filter.Limit {
					return buildPage(matched, filter.Limit), nil
				}
			}
		}

		last := items[len(items)-1].UploadedAt
		scan.Cursor = &last

		if uint64(len(items)) < scan.Limit {
			break
		}
	}

	page := buildPage(matched, filter.Limit)
	// Ran out of rows: no further page exists.
	page.NextCursor = nil

	return page, nil
}

func buildPage(items []entity.AttachmentWithRelations, limit uint64) entity.AttachmentPage {
	page := entity.AttachmentPage{Items: items}

	if uint64(len(items)) == limit && len(items) > 0 {
		oldest := items[len(items)-1].UploadedAt
		page.NextCursor = &oldest
	}

	return page
}

func (s *Service) AttachmentStats(ctx context.Context) (entity.AttachmentStats, error) {
	total, totalSize, recent, err := s.repo.AttachmentTotals(ctx, time.Now().Add(-recentUploadsWindow))
	if err != nil {
		return entity.AttachmentStats{}, fmt.Errorf("attachment totals: %w", err)
	}

	mimeCounts, err := s.repo.MimeCounts(ctx)
	if err != nil {
		return entity.AttachmentStats{}, fmt.Errorf("mime counts: %w", err)
	}

	byType := make(map[entity.FileTypeBucket]int)
	for mimeType, count := range mimeCounts {
		byType[entity.BucketForMime(mimeType)] += count
	}

	return entity.AttachmentStats{
		TotalCount:   total,
		TotalSize:    totalSize,
		ByType:       byType,
		RecentUpload: recent,
	}, nil
}

// IssueUploadURL is phase one of the upload: hand the client a signed
// URL to PUT the raw bytes to.
func (s *Service) IssueUploadURL(ctx context.Context, fileName, mimeType string) (storage.UploadTarget, error) {
	err := s.requirePermission(ctx, access.ResourceAttachment+":create")
	if err != nil {
		return storage.UploadTarget{}, err
	}

	err = ValidateFileName(fileName)
	if err != nil {
		return storage.UploadTarget{}, err
	}

	target, err := s.storage.IssueUploadURL(ctx, fileName, mimeType)
	if err != nil {
		return storage.UploadTarget{}, fmt.Errorf("issue upload url: %w", err)
	}

	return target, nil
}

// RecordAttachment is phase two: persist the metadata after the bytes
// landed in storage.
func (s *Service) RecordAttachment(ctx context.Context, issueID uuid.UUID, meta AttachmentMeta) (entity.Attachment, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Attachment{}, err
	}

	err = s.requirePermission(ctx, access.ResourceAttachment+":create")
	if err != nil {
		return entity.Attachment{}, err
	}

	_, err = s.repo.TaskByID(ctx, issueID)
	if err != nil {
		return entity.Attachment{}, fmt.Errorf("issue lookup: %w", err)
	}

	attachment := entity.Attachment{
		ID:         uuid.Must(uuid.NewV4()),
		IssueID:    issueID,
		FileName:   meta.FileName,
		FileSize:   meta.FileSize,
		MimeType:   meta.MimeType,
		StorageRef: meta.StorageRef,
		UploadedBy: user.ID,
		UploadedAt: time.Now(),
	}

	err = s.repo.CreateAttachment(ctx, attachment)
	if err != nil {
		return entity.Attachment{}, fmt.Errorf("create attachment: %w", err)
	}

	return attachment, nil
}

// DeleteAttachment removes the metadata row first, then the stored
// object best-effort: a storage failure is logged, not rolled back.
func (s *Service) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	err := s.requirePermission(ctx, access.ResourceAttachment+":delete")
	if err != nil {
		return err
	}

	attachment, err := s.repo.AttachmentByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.DeleteAttachment(ctx, id)
	if err != nil {
		return err
	}

	err = s.storage.DeleteObject(ctx, attachment.StorageRef)
	if err != nil {
		slog.ErrorContext(ctx, "delete stored object", "error", err, "storage_ref", attachment.StorageRef)
	}

	return nil
}
