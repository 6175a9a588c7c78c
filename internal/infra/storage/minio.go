package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// MinioStore keeps the idea list as a single JSON object in a bucket.
type MinioStore struct {
	client     *minio.Client
	bucketName string
	key        string
}

// MinioOptions connection settings
type MinioOptions struct {
	Endpoint   string
	Region     string
	BucketName string
	AccessKey  string
	SecretKey  string
	UseSSL     bool
	// Key is the object name holding the list.
	Key string
}

// NewMinioStore connects and makes sure the bucket exists.
func NewMinioStore(ctx context.Context, opt MinioOptions) (*MinioStore, error) {
	cli, err := minio.New(opt.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opt.AccessKey, opt.SecretKey, ""),
		Secure: opt.UseSSL,
		Region: opt.Region,
	})
	if err != nil {
		return nil, err
	}

	exists, err := cli.BucketExists(ctx, opt.BucketName)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := cli.MakeBucket(ctx, opt.BucketName, minio.MakeBucketOptions{Region: opt.Region}); err != nil {
			return nil, err
		}
	}

	return &MinioStore{client: cli, bucketName: opt.BucketName, key: objectKey(opt.Key)}, nil
}

func (s *MinioStore) Load(ctx context.Context) ([]*domain.Idea, error) {
	obj, err := s.client.GetObject(ctx, s.bucketName, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: get object: %v", domain.ErrPersistenceUnavailable, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return []*domain.Idea{}, nil
		}
		return nil, fmt.Errorf("%w: read object: %v", domain.ErrPersistenceUnavailable, err)
	}
	return domain.DecodeList(data)
}

// Save uploads the whole list in one PutObject; readers see the old or the new object, never a mix.
func (s *MinioStore) Save(ctx context.Context, list []*domain.Idea) error {
	data, err := domain.EncodeList(list)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, s.bucketName, s.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("%w: put object: %v", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (s *MinioStore) Check(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucketName)
	return err
}

func (s *MinioStore) Close() error { return nil }

func objectKey(key string) string {
	if key == "" {
		key = "ideas"
	}
	return key + ".json"
}
