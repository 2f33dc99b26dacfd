package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nailsdg/salon-api/internal/config"
)

// S3Store holds the salon's media: story images, service images,
// profile pictures. The object key doubles as the "public id" persisted
// next to each record so the asset can be deleted later.
type S3Store struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
	logger        zerolog.Logger
}

func NewS3Store(cfg *config.Config, logger zerolog.Logger) *S3Store {
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

	return &S3Store{
		client:        client,
		bucket:        cfg.S3Bucket,
		region:        cfg.S3Region,
		publicBaseURL: cfg.S3PublicBaseURL,
		logger:        logger.With().Str("component", "storage").Logger(),
	}
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func (s *S3Store) Upload(
	ctx context.Context,
	folder string,
	data []byte,
	contentType string,
) (*UploadResult, error) {

	key := fmt.Sprintf("%s/%s.webp", folder, uuid.NewString())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		URL:      s.publicURL(key),
		PublicID: key,
	}, nil
}

func (s *S3Store) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	return err
}

func (s *S3Store) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
