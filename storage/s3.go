package storage

import (
	"bytes"
	"context"
	"fmt"

	"gi-scribe/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client creates an S3 client for the paper bucket endpoint.
func NewS3Client(cfg *config.Config) (*s3.Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.PaperS3URL,
				SigningRegion:     cfg.PaperS3Region,
				HostnameImmutable: true,
			}, nil
		},
	)
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.PaperS3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.PaperS3Key, cfg.PaperS3Secret, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg), nil
}

// UploadPDF uploads a rendered paper and returns its link.
func UploadPDF(ctx context.Context, client *s3.Client, cfg *config.Config, key string, data []byte) (string, error) {
	contentType := "application/pdf"
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &cfg.PaperS3Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", cfg.PaperS3URL, cfg.PaperS3Bucket, key), nil
}
