// Package objectstore загрузка файлов (чеки оплаты, логотип, QRIS, галерея) в S3-совместимое хранилище
package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// publicReadPolicy разрешает анонимное чтение объектов бакета
const publicReadPolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`

// Config параметры подключения к хранилищу
type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Region        string
	PublicBaseURL string
}

// Store клиент хранилища с публичными ссылками на объекты
type Store struct {
	client        *minio.Client
	region        string
	publicBaseURL string
}

// New создает клиент хранилища
func New(cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: New - create client: %v", ErrBucket, err)
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = scheme + "://" + cfg.Endpoint
	}

	return &Store{
		client:        client,
		region:        cfg.Region,
		publicBaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// EnsureBuckets создает отсутствующие бакеты с публичным чтением
func (s *Store) EnsureBuckets(ctx context.Context, buckets ...string) error {
	for _, bucket := range buckets {
		exists, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("%w: EnsureBuckets - check %s: %v", ErrBucket, bucket, err)
		}
		if exists {
			continue
		}

		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("%w: EnsureBuckets - create %s: %v", ErrBucket, bucket, err)
		}

		if err := s.client.SetBucketPolicy(ctx, bucket, fmt.Sprintf(publicReadPolicy, bucket)); err != nil {
			return fmt.Errorf("%w: EnsureBuckets - policy %s: %v", ErrBucket, bucket, err)
		}
	}

	return nil
}

// Upload загружает объект и возвращает его публичную ссылку
func (s *Store) Upload(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, name, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("%w: Upload - put %s/%s: %v", ErrUpload, bucket, name, err)
	}

	return s.PublicURL(bucket, name), nil
}

// PublicURL публичная ссылка на объект
func (s *Store) PublicURL(bucket, name string) string {
	return s.publicBaseURL + "/" + bucket + "/" + name
}

// ObjectName имя объекта вида <prefix>_<unix-millis>.<ext>
func ObjectName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%d.%s", prefix, now.UnixMilli(), ext)
}
