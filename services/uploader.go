package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/errs"
)

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Client builds a client for AWS S3 or any S3 compatible store such as
// R2 or MinIO when Endpoint is set.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	region := opts.Region
	if region == "" {
		region = "auto"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type Uploader struct {
	client    ObjectPutter
	bucket    string
	publicURL string
	newID     func() string
}

// NewUploader stores objects in bucket. publicURL is the base URL objects are
// served from; when empty the virtual-hosted S3 URL for region is used.
func NewUploader(client ObjectPutter, bucket, region, publicURL string) *Uploader {
	if publicURL == "" {
		if region == "" {
			region = "us-east-1"
		}
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &Uploader{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		newID:     uuid.NewString,
	}
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func objectKey(id, filename string) string {
	name := unsafeKeyChars.ReplaceAllString(path.Base(filename), "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("uploads/%s-%s", id, name)
}

func allowedContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}

// Upload accepts images and PDFs (resumes). body must be seekable for the
// request to be signed.
func (u *Uploader) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (UploadResult, error) {
	if !allowedContentType(contentType) {
		return UploadResult{}, errs.NewInvalidFieldError("file", "must be an image or a PDF")
	}

	key := objectKey(u.newID(), filename)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := u.client.PutObject(ctx, input); err != nil {
		return UploadResult{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return UploadResult{URL: u.publicURL + "/" + key, Key: key}, nil
}
