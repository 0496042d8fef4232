package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/danuartha/notaris-go/internal/config"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

func InitMinio() {
	endpoint := config.MinioEndpoint
	accessKey := config.MinioAccessKey
	secretKey := config.MinioSecretKey
	useSSL := config.MinioUseSSL
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}

	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
}

// UploadObject streams content into the bucket under a generated key with
// the given prefix (e.g. "drafts/12"). Returns the object key.
var UploadObject = func(ctx context.Context, prefix, filename, contentType string, size int64, reader io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s-%s", strings.Trim(prefix, "/"), uuid.NewString()[:8], filename)
	_, err := Client.PutObject(ctx, BucketName, key, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio put object: %w", err)
	}
	return key, nil
}

var RemoveObject = func(ctx context.Context, key string) error {
	return Client.RemoveObject(ctx, BucketName, key, minioSDK.RemoveObjectOptions{})
}
