package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ImageUploader stores profile pictures in S3 and returns their public URL.
type ImageUploader struct {
	client *s3.Client
	bucket string
	cdnURL string
}

func NewImageUploader() (*ImageUploader, error) {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &ImageUploader{
		client: s3.NewFromConfig(cfg),
		bucket: os.Getenv("S3_BUCKET"),
		cdnURL: os.Getenv("CLOUDFRONT_URL"),
	}, nil
}

// UploadBase64Image accepts a "data:<mime>;base64,<data>" URI, uploads the
// decoded bytes under profile-pictures/ and returns the public URL.
func (u *ImageUploader) UploadBase64Image(ctx context.Context, dataURI, keyPrefix string) (string, error) {
	meta, data, ok := strings.Cut(dataURI, ",")
	if !ok || !strings.HasPrefix(meta, "data:") {
		return "", fmt.Errorf("invalid base64 image")
	}

	contentType := strings.TrimPrefix(meta, "data:")
	contentType, _, _ = strings.Cut(contentType, ";")

	ext := extensionFor(contentType)

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("profile-pictures/%s-%d%s", keyPrefix, time.Now().UnixNano(), ext)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if u.cdnURL != "" {
		return fmt.Sprintf("%s/%s", u.cdnURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if _, sub, ok := strings.Cut(contentType, "/"); ok {
		return "." + sub
	}
	return ""
}
