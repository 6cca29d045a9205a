package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrS3Disabled возвращается для s3:// источников, если клиент S3 не настроен
var ErrS3Disabled = errors.New("s3 feed sources are not configured")

// ObjectGetter - часть клиента S3, нужная для чтения выгрузки
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config - параметры подключения к S3-совместимому хранилищу
type S3Config struct {
	Region    string
	Endpoint  string // для MinIO и локальных стендов
	PathStyle bool
}

// NewS3Client создает клиент S3 по цепочке учётных данных AWS по умолчанию
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// Source открывает выгрузку по URI: локальный путь, file:// или s3://bucket/key
type Source struct {
	objects ObjectGetter
}

// NewSource создает Source. objects может быть nil, тогда s3:// недоступен.
func NewSource(objects ObjectGetter) *Source {
	return &Source{objects: objects}
}

func (s *Source) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(uri, "s3://"):
		return s.openS3(ctx, uri)
	case strings.HasPrefix(uri, "file://"):
		return openFile(strings.TrimPrefix(uri, "file://"))
	default:
		return openFile(uri)
	}
}

func (s *Source) openS3(ctx context.Context, uri string) (io.ReadCloser, error) {
	if s.objects == nil {
		return nil, ErrS3Disabled
	}
	bucket, key, err := parseS3URI(uri)
	if err != nil {
		return nil, err
	}
	out, err := s.objects.GetObject(ctx, &s3.GetObjectInput{Bucket: &bucket, Key: &key})
	if err != nil {
		return nil, fmt.Errorf("failed to get feed object %s: %w", uri, err)
	}
	return out.Body, nil
}

func openFile(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, errors.New("empty feed path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed file: %w", err)
	}
	return f, nil
}

func parseS3URI(uri string) (string, string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 uri %q: %w", uri, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 uri %q: bucket and key are required", uri)
	}
	return u.Host, key, nil
}
