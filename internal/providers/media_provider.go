package providers

import (
	"bytes"
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"mindcare/internal/models"
	"mindcare/internal/structures"
	"time"
)

type MediaStoreInterface interface {
	Upload(ctx context.Context, key, contentType string, body []byte) error
	PresignGet(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type S3MediaStore struct {
	client     s3API
	presigner  s3Presigner
	bucket     string
	presignTTL time.Duration
}

func NewMediaProvider(conf *structures.Config, logger Logger) (MediaStoreInterface, error) {
	if !conf.Media.Enabled {
		logger.Infof(TypeApp, "Media uploads disabled")
		return &disabledMedia{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var loadOpts []func(*config.LoadOptions) error
	if conf.Media.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(conf.Media.Region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	logger.Infof(TypeApp, "Media uploads to bucket %s", conf.Media.Bucket)
	return &S3MediaStore{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucket:     conf.Media.Bucket,
		presignTTL: conf.Media.PresignTTL,
	}, nil
}

func (s *S3MediaStore) Upload(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return &models.CollaboratorError{Collaborator: "media", Err: err}
	}
	return nil
}

func (s *S3MediaStore) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		return "", &models.CollaboratorError{Collaborator: "media", Err: err}
	}
	return req.URL, nil
}

func (s *S3MediaStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return &models.CollaboratorError{Collaborator: "media", Err: err}
	}
	return nil
}

type disabledMedia struct{}

func (d *disabledMedia) Upload(_ context.Context, _, _ string, _ []byte) error {
	return fmt.Errorf("media: %w", models.ErrCollaboratorDisabled)
}

func (d *disabledMedia) PresignGet(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("media: %w", models.ErrCollaboratorDisabled)
}

func (d *disabledMedia) Delete(_ context.Context, _ string) error {
	return fmt.Errorf("media: %w", models.ErrCollaboratorDisabled)
}
