package aws

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/inheeen/sales-bonus/internal/domain/repository"
)

// S3API is the subset of the S3 client used by the repository.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3RepositoryImpl implementa o StorageRepository com cache de clientes por perfil.
type S3RepositoryImpl struct {
	clientCache map[string]S3API
	newClient   func(ctx context.Context, profile string) (S3API, error)
	mu          sync.Mutex
}

// NewS3Repository cria uma nova implementação do StorageRepository.
func NewS3Repository() repository.StorageRepository {
	return &S3RepositoryImpl{
		clientCache: make(map[string]S3API),
		newClient:   loadS3Client,
	}
}

// NewS3RepositoryWithClient usa um cliente fixo, independente do perfil.
func NewS3RepositoryWithClient(client S3API) *S3RepositoryImpl {
	return &S3RepositoryImpl{
		clientCache: make(map[string]S3API),
		newClient: func(context.Context, string) (S3API, error) {
			return client, nil
		},
	}
}

func loadS3Client(ctx context.Context, profile string) (S3API, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}
	return s3.NewFromConfig(cfg), nil
}

func (r *S3RepositoryImpl) getClient(ctx context.Context, profile string) (S3API, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clientCache[profile]; ok {
		return client, nil
	}

	client, err := r.newClient(ctx, profile)
	if err != nil {
		return nil, err
	}

	r.clientCache[profile] = client
	return client, nil
}

// GetObject baixa o conteúdo completo de um objeto.
func (r *S3RepositoryImpl) GetObject(ctx context.Context, profile, bucket, key string) ([]byte, error) {
	client, err := r.getClient(ctx, profile)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error downloading s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading s3://%s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// UploadFile envia um arquivo local para o bucket e retorna a URI do objeto.
func (r *S3RepositoryImpl) UploadFile(ctx context.Context, profile, bucket, key, filePath string) (string, error) {
	client, err := r.getClient(ctx, profile)
	if err != nil {
		return "", err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error opening %s: %w", filePath, err)
	}
	defer file.Close()

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(filePath)),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s to s3://%s/%s: %w", filePath, bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}

func contentType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
