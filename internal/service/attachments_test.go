package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/httpclients/storage"
	"github.com/samandr77/stroika/internal/service"
	"go.uber.org/mock/gomock"
)

func attachmentAt(uploadedAt time.Time, mimeType string) entity.AttachmentWithRelations {
	return entity.AttachmentWithRelations{
		Attachment: entity.Attachment{
			ID:         uuid.Must(uuid.NewV4()),
			IssueID:    uuid.Must(uuid.NewV4()),
			FileName:   "файл.bin",
			MimeType:   mimeType,
			UploadedBy: uuid.Must(uuid.NewV4()),
			UploadedAt: uploadedAt,
		},
	}
}

func TestService_AttachmentsPage_FullPageSetsCursor(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	now := time.Now().Truncate(time.Millisecond)

	items := []entity.AttachmentWithRelations{
		attachmentAt(now, "application/pdf"),
		attachmentAt(now.Add(-time.Minute), "application/pdf"),
	}

	ts.repo.EXPECT().Attachments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter entity.AttachmentFilter) ([]entity.AttachmentWithRelations, error) {
			require.Equal(t, uint64(2), filter.Limit)
			return items, nil
		})

	page, err := ts.s.AttachmentsPage(context.Background(), entity.AttachmentFilter{Limit: 2})
	r.NoError(err)
	r.Equal(items, page.Items)

	// Full page: the cursor points at the oldest item returned.
	r.NotNil(page.NextCursor)
	r.Equal(now.Add(-time.Minute), *page.NextCursor)
}

func TestService_AttachmentsPage_ShortPageEndsPagination(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	items := []entity.AttachmentWithRelations{
		attachmentAt(time.Now(), "image/png"),
	}

	ts.repo.EXPECT().Attachments(gomock.Any(), gomock.Any()).Return(items, nil)

	page, err := ts.s.AttachmentsPage(context.Background(), entity.AttachmentFilter{Limit: 5})
	r.NoError(err)
	r.Len(page.Items, 1)
	r.Nil(page.NextCursor)
}

func TestService_AttachmentsPage_DefaultAndMaxLimit(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ts.repo.EXPECT().Attachments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter entity.AttachmentFilter) ([]entity.AttachmentWithRelations, error) {
			require.Equal(t, uint64(20), filter.Limit)
			return nil, nil
		})

	_, err := ts.s.AttachmentsPage(context.Background(), entity.AttachmentFilter{})
	r.NoError(err)

	ts.repo.EXPECT().Attachments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter entity.AttachmentFilter) ([]entity.AttachmentWithRelations, error) {
			require.Equal(t, uint64(100), filter.Limit)
			return nil, nil
		})

	_, err = ts.s.AttachmentsPage(context.Background(), entity.AttachmentFilter{Limit: 500})
	r.NoError(err)
}

func TestService_AttachmentsPage_TypeBucketScansForward(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	now := time.Now().Truncate(time.Millisecond)

	pdf := attachmentAt(now.Add(-time.Minute), "application/pdf")
	image := attachmentAt(now, "image/png")
	olderImage := attachmentAt(now.Add(-2*time.Minute), "image/jpeg")

	// First batch fills the limit with pdf rows filtered out.
	ts.repo.EXPECT().Attachments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter entity.AttachmentFilter) ([]entity.AttachmentWithRelations, error) {
			require.Nil(t, filter.Cursor)
			require.Empty(t, filter.FileType)
			return []entity.AttachmentWithRelations{image, pdf}, nil
		})
	ts.repo.EXPECT().Attachments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter entity.AttachmentFilter) ([]entity.AttachmentWithRelations, error) {
			require.NotNil(t, filter.Cursor)
			require.Equal(t, pdf.UploadedAt, *filter.Cursor)
			return []entity.AttachmentWithRelations{olderImage}, nil
		})

	page, err := ts.s.AttachmentsPage(context.Background(), entity.AttachmentFilter{
		Limit:    2,
		FileType: entity.FileTypeImage,
	})
	r.NoError(err)
	r.Equal([]entity.AttachmentWithRelations{image, olderImage}, page.Items)
}

func TestService_AttachmentsPage_TypeBucketRunsOutOfRows(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	pdf := attachmentAt(time.Now(), "application/pdf")

	ts.repo.EXPECT().Attachments(gomock.Any(), gomock.Any()).
		Return([]entity.AttachmentWithRelations{pdf}, nil)

	page, err := ts.s.AttachmentsPage(context.Background(), entity.AttachmentFilter{
		Limit:    5,
		FileType: entity.FileTypeImage,
	})
	r.NoError(err)
	r.Empty(page.Items)
	r.Nil(page.NextCursor)
}

func TestService_AttachmentStats(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ts.repo.EXPECT().AttachmentTotals(gomock.Any(), gomock.Any()).Return(5, int64(4096), 2, nil)
	ts.repo.EXPECT().MimeCounts(gomock.Any()).Return(map[string]int{
		"image/png":       2,
		"image/jpeg":      1,
		"application/pdf": 1,
		"application/zip": 1,
	}, nil)

	stats, err := ts.s.AttachmentStats(context.Background())
	r.NoError(err)
	r.Equal(5, stats.TotalCount)
	r.Equal(int64(4096), stats.TotalSize)
	r.Equal(2, stats.RecentUpload)
	r.Equal(map[entity.FileTypeBucket]int{
		entity.FileTypeImage: 3,
		entity.FileTypePDF:   1,
		entity.FileTypeOther: 1,
	}, stats.ByType)
}

func TestService_IssueUploadURL(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	want := storage.UploadTarget{
		UploadURL:  "https://storage.local/upload/abc",
		StorageRef: "abc",
	}

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)
	ts.storage.EXPECT().IssueUploadURL(gomock.Any(), "смета.pdf", "application/pdf").Return(want, nil)

	got, err := ts.s.IssueUploadURL(ctx, "смета.pdf", "application/pdf")
	r.NoError(err)
	r.Equal(want, got)
}

func TestService_IssueUploadURL_RejectsPathSeparators(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)

	_, err := ts.s.IssueUploadURL(ctx, "../смета.pdf", "application/pdf")
	require.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestService_RecordAttachment(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	issueID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)
	ts.repo.EXPECT().TaskByID(gomock.Any(), issueID).Return(entity.Task{ID: issueID}, nil)
	ts.repo.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).Return(nil)

	attachment, err := ts.s.RecordAttachment(ctx, issueID, service.AttachmentMeta{
		FileName:   "смета.pdf",
		FileSize:   1024,
		MimeType:   "application/pdf",
		StorageRef: "ref-1",
	})
	r.NoError(err)
	r.Equal(issueID, attachment.IssueID)
	r.Equal(user.ID, attachment.UploadedBy)
}

func TestService_RecordAttachment_Forbidden(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	// Phase two is gated the same way as the upload-url phase, so a
	// client skipping phase one gains nothing.
	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).
		Return([]entity.Permission{{Resource: "attachments", Action: "view"}}, nil)

	_, err := ts.s.RecordAttachment(ctx, uuid.Must(uuid.NewV4()), service.AttachmentMeta{
		FileName: "смета.pdf",
	})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_DeleteAttachment_StorageFailureTolerated(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	id := uuid.Must(uuid.NewV4())
	attachment := entity.Attachment{ID: id, StorageRef: "ref-9"}

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)
	ts.repo.EXPECT().AttachmentByID(gomock.Any(), id).Return(attachment, nil)
	ts.repo.EXPECT().DeleteAttachment(gomock.Any(), id).Return(nil)
	ts.storage.EXPECT().DeleteObject(gomock.Any(), "ref-9").Return(context.DeadlineExceeded)

	// Metadata removal already happened, the storage error is only logged.
	r.NoError(ts.s.DeleteAttachment(ctx, id))
}
