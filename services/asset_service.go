package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/greencity/wastetrack/config"
)

// SignedURLValidity is how long a presigned image link stays usable.
const SignedURLValidity = 5 * time.Minute

// AssetService owns the object storage side of complaints: uploads, deletes
// and short-lived read links. Keys are opaque to everything above it.
type AssetService interface {
	Store(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string) (string, error)
}

type assetService struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

func NewAssetService(conf *config.Config) (AssetService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(conf.AwsRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			conf.AwsAccessKeyID,
			conf.AwsSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %v", err)
	}
	client := s3.NewFromConfig(cfg)
	return &assetService{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  conf.AwsBucket,
	}, nil
}

// BuildImageKey names an uploaded complaint photo. The uuid keeps two uploads
// from the same user from ever colliding.
func BuildImageKey(userID uint) string {
	return fmt.Sprintf("complaints/%d-%s.jpg", userID, uuid.New().String())
}

func (a *assetService) Store(ctx context.Context, key string, body io.Reader, contentType string) error {
	log.Printf("uploading to bucket %s with key %s", a.bucket, key)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to S3: %v", err)
	}
	return nil
}

func (a *assetService) Delete(ctx context.Context, key string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete S3 object %s: %v", key, err)
	}
	return nil
}

func (a *assetService) SignedURL(ctx context.Context, key string) (string, error) {
	req, err := a.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(SignedURLValidity))
	if err != nil {
		return "", fmt.Errorf("failed to presign S3 object %s: %v", key, err)
	}
	return req.URL, nil
}
