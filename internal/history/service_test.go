package history_test

import (
	"context"
	"errors"
	"qrscanner/internal/history"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/serrors"
	"qrscanner/pkg/storage"
	mockstorage "qrscanner/pkg/storage/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServiceRecentClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit uint
		want  uint
	}{
		{name: "default", limit: 0, want: history.DefaultPageSize},
		{name: "as given", limit: 5, want: 5},
		{name: "capped", limit: 1000, want: history.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			strg := mockstorage.NewMockScanRecordStorage(ctrl)
			svc := history.NewService(strg)

			page := storage.ScanRecords{Records: []domain.ScanRecord{{Text: "https://theocourbe.com"}}}
			strg.EXPECT().RecentScanRecords(gomock.Any(), storage.ScanRecordFilter{}, time.Time{}, tt.want).Return(page, nil)

			got, err := svc.Recent(context.Background(), storage.ScanRecordFilter{}, time.Time{}, tt.limit)
			require.NoError(t, err)
			require.Equal(t, page, got)
		})
	}
}

func TestServiceRecentErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockScanRecordStorage(ctrl)
	strg.EXPECT().RecentScanRecords(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(storage.ScanRecords{}, errors.New("connection refused"))

	_, err := history.NewService(strg).Recent(context.Background(), storage.ScanRecordFilter{}, time.Time{}, 0)
	require.ErrorIs(t, err, serrors.ErrInternal)

	var disabled *history.Service
	_, err = disabled.Recent(context.Background(), storage.ScanRecordFilter{}, time.Time{}, 0)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
