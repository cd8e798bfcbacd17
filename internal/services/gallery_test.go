package services

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/postpal/postpal-server/internal/models"
)

func TestParseDataURI(t *testing.T) {
	tests := []struct {
		name            string
		uri             string
		wantContentType string
		wantPayload     string
		wantErr         bool
	}{
		{
			name:            "png",
			uri:             "data:image/png;base64,aGVsbG8=",
			wantContentType: "image/png",
			wantPayload:     "aGVsbG8=",
		},
		{
			name:            "jpeg",
			uri:             "data:image/jpeg;base64,aGVsbG8=",
			wantContentType: "image/jpeg",
			wantPayload:     "aGVsbG8=",
		},
		{name: "no comma", uri: "data:image/png;base64", wantErr: true},
		{name: "missing data prefix", uri: "image/png;base64,aGVsbG8=", wantErr: true},
		{name: "not base64 encoded", uri: "data:image/png,aGVsbG8=", wantErr: true},
		{name: "empty content type", uri: "data:;base64,aGVsbG8=", wantErr: true},
		{name: "plain string", uri: "not-a-data-uri", wantErr: true},
		{name: "empty", uri: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType, payload, err := parseDataURI(tt.uri)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidImageData)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantContentType, contentType)
			assert.Equal(t, tt.wantPayload, payload)
		})
	}
}

func TestGalleryService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	imageID := uuid.New()

	tests := []struct {
		name      string
		title     string
		dataURI   string
		mockSetup func(writer *MockImageSaver, events *MockEventWriter)
		wantTitle string
		wantErr   error
	}{
		{
			name:    "success",
			title:   "cat",
			dataURI: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes")),
			mockSetup: func(writer *MockImageSaver, events *MockEventWriter) {
				writer.EXPECT().
					Save(ctx, userID, "cat", []byte("png-bytes"), "image/png").
					Return(imageID, nil)
				events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTitle: "cat",
		},
		{
			name:    "empty title defaults to Untitled",
			dataURI: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes")),
			mockSetup: func(writer *MockImageSaver, events *MockEventWriter) {
				writer.EXPECT().
					Save(ctx, userID, "Untitled", []byte("png-bytes"), "image/png").
					Return(imageID, nil)
				events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTitle: "Untitled",
		},
		{
			name:    "malformed data uri",
			dataURI: "not-a-data-uri",
			wantErr: ErrInvalidImageData,
		},
		{
			name:    "invalid base64 payload",
			dataURI: "data:image/png;base64,%%%not-base64%%%",
			wantErr: ErrInvalidImageData,
		},
		{
			name:    "save fails",
			title:   "cat",
			dataURI: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes")),
			mockSetup: func(writer *MockImageSaver, events *MockEventWriter) {
				writer.EXPECT().
					Save(ctx, userID, "cat", []byte("png-bytes"), "image/png").
					Return(uuid.Nil, errors.New("insert failed"))
			},
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewMockImageSaver(ctrl)
			events := NewMockEventWriter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(writer, events)
			}

			svc := NewGalleryService(NewMockImageLister(ctrl), writer, events)

			image, err := svc.Upload(ctx, userID, tt.title, tt.dataURI)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, image)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, imageID, image.ImageID)
			assert.Equal(t, userID, image.UserID)
			assert.Equal(t, tt.wantTitle, image.Title)
			assert.Equal(t, "image/png", image.ContentType)
			assert.Equal(t, []byte("png-bytes"), image.Data)
		})
	}
}

func TestGalleryService_UploadSizeLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	atLimit := make([]byte, MaxImageBytes)
	overLimit := make([]byte, MaxImageBytes+1)

	writer := NewMockImageSaver(ctrl)
	writer.EXPECT().
		Save(ctx, userID, "Untitled", atLimit, "image/png").
		Return(uuid.New(), nil)

	svc := NewGalleryService(NewMockImageLister(ctrl), writer, nil)

	_, err := svc.Upload(ctx, userID, "", "data:image/png;base64,"+base64.StdEncoding.EncodeToString(atLimit))
	assert.NoError(t, err)

	_, err = svc.Upload(ctx, userID, "", "data:image/png;base64,"+base64.StdEncoding.EncodeToString(overLimit))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestGalleryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	images := []models.ImageDB{
		{ImageID: uuid.New(), UserID: userID, Title: "newest"},
		{ImageID: uuid.New(), UserID: userID, Title: "older"},
	}

	reader := NewMockImageLister(ctrl)
	reader.EXPECT().ListByUserID(ctx, userID).Return(images, nil)

	svc := NewGalleryService(reader, NewMockImageSaver(ctrl), nil)

	got, err := svc.List(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, images, got)
}

func TestGalleryService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockImageLister(ctrl)
	reader.EXPECT().ListByUserID(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	svc := NewGalleryService(reader, NewMockImageSaver(ctrl), nil)

	got, err := svc.List(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, got)
}
