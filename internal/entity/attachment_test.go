package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/entity"
)

func TestBucketForMime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mimeType string
		want     entity.FileTypeBucket
	}{
		{mimeType: "image/png", want: entity.FileTypeImage},
		{mimeType: "IMAGE/JPEG", want: entity.FileTypeImage},
		{mimeType: "application/pdf", want: entity.FileTypePDF},
		{mimeType: "video/mp4", want: entity.FileTypeVideo},
		{mimeType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", want: entity.FileTypeSpreadsheet},
		{mimeType: "application/vnd.ms-excel", want: entity.FileTypeSpreadsheet},
		{mimeType: "text/csv", want: entity.FileTypeSpreadsheet},
		{mimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", want: entity.FileTypeDocument},
		{mimeType: "application/vnd.oasis.opendocument.text", want: entity.FileTypeDocument},
		{mimeType: "application/rtf", want: entity.FileTypeDocument},
		{mimeType: "text/plain", want: entity.FileTypeDocument},
		{mimeType: "application/zip", want: entity.FileTypeOther},
		{mimeType: "", want: entity.FileTypeOther},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.mimeType, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, entity.BucketForMime(tt.mimeType))
		})
	}
}
