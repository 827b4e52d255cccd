package config

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testS3Config() *S3Config {
	awsCfg := aws.Config{
		Region: "us-east-1",
		Credentials: aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{AccessKeyID: "test-key", SecretAccessKey: "test-secret"}, nil
		}),
	}
	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: "recipesnap-photos",
		Region:     "us-east-1",
	}
}

func TestObjectURL(t *testing.T) {
	cfg := testS3Config()
	assert.Equal(t,
		"https://recipesnap-photos.s3.us-east-1.amazonaws.com/ingredient-photos/a/b.jpg",
		cfg.ObjectURL("ingredient-photos/a/b.jpg"))
}

func TestGeneratePresignedURL(t *testing.T) {
	cfg := testS3Config()

	// Presigning is a local signing operation; no bucket is contacted
	url, err := cfg.GeneratePresignedURL(context.Background(), "ingredient-photos/a/b.jpg", time.Hour)
	require.NoError(t, err)

	assert.Contains(t, url, "recipesnap-photos")
	assert.Contains(t, url, "ingredient-photos/a/b.jpg")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=3600")
}
