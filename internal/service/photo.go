package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/recipesnap/backend/config"
)

// photoURLTTL matches the pantry draft TTL, so a draft's photo link stays
// valid as long as the draft itself.
const photoURLTTL = 24 * time.Hour

// PhotoService stores uploaded ingredient photos in S3
type PhotoService struct {
	s3Config *config.S3Config
}

// NewPhotoService creates a new PhotoService instance
func NewPhotoService(s3Config *config.S3Config) *PhotoService {
	return &PhotoService{s3Config: s3Config}
}

// UploadPhoto stores the photo bytes and returns the object URL
func (s *PhotoService) UploadPhoto(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error) {
	ext := "jpg"
	switch contentType {
	case "image/png":
		ext = "png"
	case "image/webp":
		ext = "webp"
	case "image/gif":
		ext = "gif"
	}

	objectKey := fmt.Sprintf("ingredient-photos/%s/%s.%s", userID, uuid.New(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	// The bucket is private; hand back a presigned GET link. A public
	// bucket without signing credentials falls back to the plain URL.
	url, err := s.s3Config.GeneratePresignedURL(ctx, objectKey, photoURLTTL)
	if err != nil {
		return s.s3Config.ObjectURL(objectKey), nil
	}
	return url, nil
}

// EncodeDataURI builds the data URI handed to the identification adapter
func EncodeDataURI(data []byte, contentType string) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI splits a data URI into its payload and media type
func DecodeDataURI(dataURI string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return nil, "", fmt.Errorf("not a data URI")
	}

	rest := strings.TrimPrefix(dataURI, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return nil, "", fmt.Errorf("malformed data URI")
	}

	contentType := strings.TrimSuffix(meta, ";base64")
	if contentType == "" {
		contentType = "text/plain"
	}

	if strings.HasSuffix(meta, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
		}
		return data, contentType, nil
	}

	return []byte(payload), contentType, nil
}
