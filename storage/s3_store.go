package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// S3Options configures the Supabase S3-compatible storage endpoint.
type S3Options struct {
	Endpoint        string // e.g. https://<project>.supabase.co/storage/v1/s3
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// PublicBaseURL is the Supabase project URL public object links are built from.
	PublicBaseURL string
}

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type S3Store struct {
	client  objectAPI
	baseURL string
	logger  zerolog.Logger
}

func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	if opts.Endpoint == "" {
		return nil, errs.NewEnvironmentVariableError("STORAGE_S3_ENDPOINT")
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errs.NewConfigError("storage", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	})
	return newS3Store(client, opts.PublicBaseURL), nil
}

func newS3Store(client objectAPI, baseURL string) *S3Store {
	return &S3Store{
		client:  client,
		baseURL: baseURL,
		logger:  log.With().Str("store", "s3").Logger(),
	}
}

func (s *S3Store) Upload(ctx context.Context, bucket, objectPath string, body io.Reader, contentType string, upsert bool) error {
	if !upsert {
		exists, err := s.exists(ctx, bucket, objectPath)
		if err != nil {
			return errs.NewUploadError(bucket, objectPath, err)
		}
		if exists {
			return errs.NewObjectExistsError(bucket, objectPath)
		}
	}

	// PutObject needs a seekable body to compute the payload hash.
	seeker, ok := body.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(body)
		if err != nil {
			return errs.NewUploadError(bucket, objectPath, err)
		}
		seeker = bytes.NewReader(data)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(objectPath),
		Body:         seeker,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("bucket", bucket).Str("path", objectPath).Msg("upload failed")
		return errs.NewUploadError(bucket, objectPath, err)
	}
	return nil
}

func (s *S3Store) PublicURL(bucket, objectPath string) string {
	return publicURL(s.baseURL, bucket, objectPath)
}

func (s *S3Store) exists(ctx context.Context, bucket, objectPath string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectPath),
	})
	if err == nil {
		return true, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && isMissingCode(apiErr.ErrorCode()) {
		return false, nil
	}
	return false, err
}

func isMissingCode(code string) bool {
	switch strings.ToLower(code) {
	case "notfound", "nosuchkey", "404":
		return true
	}
	return false
}
