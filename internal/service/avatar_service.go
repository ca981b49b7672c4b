package service

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"

	"user-auth-server/config"
	"user-auth-server/internal/ports"
	"user-auth-server/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewAvatarStorage выбирает реализацию хранилища аватаров по конфигурации:
// каталог на диске, если указан local_dir, иначе S3.
func NewAvatarStorage(ctx context.Context, cfg *config.AvatarStorageConfig) (ports.AvatarStorage, error) {
	if cfg.LocalDir != "" {
		return NewLocalAvatarStorage(cfg.LocalDir)
	}
	return NewS3AvatarStorage(ctx, cfg)
}

// LocalAvatarStorage пишет аватары в каталог на диске
type LocalAvatarStorage struct {
	dir string
}

func NewLocalAvatarStorage(dir string) (*LocalAvatarStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, util.LogError("[AvatarStorage] не удалось создать каталог", err)
	}
	return &LocalAvatarStorage{dir: dir}, nil
}

func (s *LocalAvatarStorage) SaveAvatar(_ context.Context, fileName string, data []byte) (string, error) {
	filePath := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", util.LogError("[AvatarStorage] не удалось записать файл", err)
	}
	return filePath, nil
}

// S3AvatarStorage кладет аватары в бакет S3
type S3AvatarStorage struct {
	client *s3.Client
	bucket string
}

func NewS3AvatarStorage(ctx context.Context, cfg *config.AvatarStorageConfig) (*S3AvatarStorage, error) {
	var client *s3.Client

	if cfg.Local {
		client = s3.New(s3.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				"minioadmin",
				"minioadmin",
				"",
			),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})

		if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
			return nil, util.LogError("[AvatarStorage] ошибка создания бакета", err)
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[AvatarStorage] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3AvatarStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// createBucketIfNotExists создает бакет если он не существует
func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})

	if err == nil {
		return nil // Бакет уже существует
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		return util.LogError("[AvatarStorage] ошибка создания бакета", err)
	}

	log.Printf("[AvatarStorage] бакет %s успешно создан", bucket)
	return nil
}

func (s *S3AvatarStorage) SaveAvatar(ctx context.Context, fileName string, data []byte) (string, error) {
	key := "avatars/" + fileName

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", util.LogError("[AvatarStorage] не удалось загрузить объект", err)
	}

	return key, nil
}
