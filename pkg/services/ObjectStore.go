package services

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/createbucketoptions"
	"github.com/adampresley/adamgokit/s3/geturloptions"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/adampresley/adamgokit/slices"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

//go:generate mockgen -destination=../../mock/services/objectstore.go -package=mock_services github.com/adampresley/springagram/pkg/services ObjectStore

type StoredObject struct {
	Key          string
	URL          string
	LastModified time.Time
}

type ObjectStore interface {
	EnsureBucket() error
	PutObject(key string, body io.Reader) error
	ObjectExists(key string) (bool, error)
	ListObjects(prefix string, extensions ...string) ([]StoredObject, error)
	DeleteObject(key string) error
}

type S3ObjectStoreConfig struct {
	Bucket   string
	Region   string
	S3Client s3.S3Client
}

// S3ObjectStore keeps objects in a single S3 bucket.
type S3ObjectStore struct {
	bucket   string
	region   string
	s3Client s3.S3Client
}

func NewS3ObjectStore(config S3ObjectStoreConfig) S3ObjectStore {
	return S3ObjectStore{
		bucket:   config.Bucket,
		region:   config.Region,
		s3Client: config.S3Client,
	}
}

func (s S3ObjectStore) EnsureBucket() error {
	var (
		err    error
		exists bool
	)

	if exists, err = s.s3Client.BucketExists(s.bucket); err != nil {
		return fmt.Errorf("error ensuring bucket '%s' exists: %w", s.bucket, err)
	}

	if exists {
		return nil
	}

	if err = s.s3Client.CreateBucket(s.bucket, createbucketoptions.WithRegion(s.region)); err != nil {
		return fmt.Errorf("error creating bucket '%s': %w", s.bucket, err)
	}

	return nil
}

func (s S3ObjectStore) PutObject(key string, body io.Reader) error {
	if _, err := s.s3Client.Put(s.bucket, key, body); err != nil {
		return fmt.Errorf("error putting object '%s': %w", key, err)
	}

	return nil
}

func (s S3ObjectStore) ObjectExists(key string) (bool, error) {
	var (
		err  error
		stat *s3.ObjectMetadata
	)

	if stat, err = s.s3Client.StatObject(s.bucket, key); err != nil {
		return false, fmt.Errorf("error retrieving metadata for '%s': %w", key, err)
	}

	return stat != nil, nil
}

// ListObjects lists every object under prefix, with presigned URLs. Extensions, when given, filter by file extension.
func (s S3ObjectStore) ListObjects(prefix string, extensions ...string) ([]StoredObject, error) {
	var (
		err      error
		response s3.ListResponse
	)

	response, err = s.s3Client.List(
		s.bucket,
		prefix,
		listoptions.WithGetUrls(),
		listoptions.WithGetAll(),
		listoptions.WithFilter(func(obj types.Object) bool {
			if len(extensions) == 0 {
				return true
			}

			ext := strings.ToLower(filepath.Ext(aws.ToString(obj.Key)))
			return slices.IsInSlice(ext, extensions)
		}),
		listoptions.WithGetUrlOptions(
			geturloptions.WithExpiration(time.Minute*30),
		),
	)

	if err != nil {
		return nil, fmt.Errorf("error listing objects under '%s': %w", prefix, err)
	}

	result := make([]StoredObject, 0, len(response.Objects))

	for _, obj := range response.Objects {
		result = append(result, StoredObject{
			Key:          obj.Key,
			URL:          obj.Url,
			LastModified: obj.LastModified,
		})
	}

	return result, nil
}

func (s S3ObjectStore) DeleteObject(key string) error {
	if _, err := s.s3Client.Delete(s.bucket, []string{key}); err != nil {
		return fmt.Errorf("error deleting object '%s': %w", key, err)
	}

	return nil
}
