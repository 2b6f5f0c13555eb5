package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jrandrade/datastore-gateway/config"
	"github.com/jrandrade/datastore-gateway/entity"
)

// objectStoreAPI is the slice of the minio client the gateway uses. Tests
// substitute an in-memory fake.
type objectStoreAPI interface {
	ListBuckets(ctx context.Context) ([]minio.BucketInfo, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// ObjectStoreClient is the stateless S3-compatible client. It has no pooling
// semantics; the underlying client is safe for concurrent use.
type ObjectStoreClient struct {
	api      objectStoreAPI
	endpoint string
	useSSL   bool
}

// InitObjectStoreClient builds the client once from credentials; every call
// after that is independent.
func InitObjectStoreClient(cfg *config.EnvConfig) (*ObjectStoreClient, error) {
	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.SessionToken),
		Secure: cfg.Storage.UseSSL,
		Region: cfg.Storage.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage client: %w", err)
	}

	return &ObjectStoreClient{
		api:      client,
		endpoint: cfg.Storage.Endpoint,
		useSSL:   cfg.Storage.UseSSL,
	}, nil
}

// NewObjectStoreClientWithAPI wires an alternative backend. Test helper.
func NewObjectStoreClientWithAPI(api objectStoreAPI, endpoint string) *ObjectStoreClient {
	return &ObjectStoreClient{api: api, endpoint: endpoint}
}

// ListBuckets enumerates every bucket visible to the configured credentials.
func (o *ObjectStoreClient) ListBuckets(ctx context.Context) ([]entity.BucketInfo, error) {
	buckets, err := o.api.ListBuckets(ctx)
	if err != nil {
		return nil, entity.NewStoreError("list buckets", err)
	}

	infos := make([]entity.BucketInfo, 0, len(buckets))
	for _, b := range buckets {
		infos = append(infos, entity.BucketInfo{Name: b.Name, CreationDate: b.CreationDate})
	}
	return infos, nil
}

// ListObjects lists one bucket's objects. Only the provider's default page
// is returned; there is no truncation indicator for the caller.
func (o *ObjectStoreClient) ListObjects(ctx context.Context, bucketName string) ([]entity.ObjectInfo, error) {
	objects := make([]entity.ObjectInfo, 0)
	for obj := range o.api.ListObjects(ctx, bucketName, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, entity.NewStoreError("list objects", obj.Err)
		}
		objects = append(objects, entity.ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			ETag:         obj.ETag,
		})
	}
	return objects, nil
}

// Upload stores one object and returns its location.
func (o *ObjectStoreClient) Upload(ctx context.Context, bucketName, key string, reader io.Reader, size int64, contentType string) (*entity.UploadResult, error) {
	info, err := o.api.PutObject(ctx, bucketName, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, entity.NewStoreError("upload object", err)
	}

	location := info.Location
	if location == "" {
		scheme := "http"
		if o.useSSL {
			scheme = "https"
		}
		location = fmt.Sprintf("%s://%s/%s/%s", scheme, o.endpoint, bucketName, key)
	}

	return &entity.UploadResult{
		Bucket:   bucketName,
		Key:      key,
		Location: location,
		ETag:     info.ETag,
		Size:     info.Size,
	}, nil
}

// Stat probes for an object's existence. A missing object maps to
// entity.ErrNotFound; any other fault is a store error.
func (o *ObjectStoreClient) Stat(ctx context.Context, bucketName, key string) (*entity.ObjectInfo, error) {
	info, err := o.api.StatObject(ctx, bucketName, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey" {
			return nil, entity.ErrNotFound
		}
		return nil, entity.NewStoreError("stat object", err)
	}
	return &entity.ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		LastModified: info.LastModified,
		ETag:         info.ETag,
	}, nil
}

// Remove deletes one object. The existence probe happens at the handler; a
// concurrent delete between probe and removal surfaces here as a store
// error.
func (o *ObjectStoreClient) Remove(ctx context.Context, bucketName, key string) error {
	if err := o.api.RemoveObject(ctx, bucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return entity.NewStoreError("remove object", err)
	}
	return nil
}
