package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrUnsupportedImageType = errors.New("formato de imagen no soportado")

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ImageService stores recipe images in S3 and hands back the public URL the
// recipe's image field references.
type ImageService struct {
	client *s3.Client
	bucket string
}

func NewImageService(client *s3.Client, bucket string) *ImageService {
	return &ImageService{client: client, bucket: bucket}
}

// UploadRecipeImage uploads image bytes under a fresh object name and
// returns the public URL.
func (s *ImageService) UploadRecipeImage(ctx context.Context, data []byte, contentType string) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", ErrUnsupportedImageType
	}

	objectKey := fmt.Sprintf("recipe-images/%s.%s", uuid.New().String(), ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload image to s3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, objectKey)
	log.Printf("[ImageService] uploaded recipe image %s", publicURL)
	return publicURL, nil
}
