package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bellebook/salon-scheduler/internal/config"
)

// ProfilePictureStore keeps the re-encoded profile pictures in S3.
type ProfilePictureStore struct {
	client *s3.Client
	bucket string
}

func NewProfilePictureStore(cfg *config.Config) *ProfilePictureStore {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &ProfilePictureStore{
		client: client,
		bucket: cfg.S3Bucket,
	}
}

// Upload re-encodes the uploaded image and stores it under a key derived
// from the user id; re-uploading replaces the previous picture.
func (s *ProfilePictureStore) Upload(
	ctx context.Context,
	userID uint,
	r io.Reader,
) (string, error) {

	body, err := EncodeProfilePicture(r)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("profile-pictures/%d.webp", userID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

// Fetch streams a stored picture and its content type.
func (s *ProfilePictureStore) Fetch(
	ctx context.Context,
	key string,
) (io.ReadCloser, string, int64, error) {

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", 0, err
	}

	contentType := "image/webp"
	if out.ContentType != nil {
		contentType = *out.ContentType
	}

	var size int64
	if out.ContentLength != nil {
		size = *out.ContentLength
	}

	return out.Body, contentType, size, nil
}
