package source

import (
	"context"

	"level_tracker_backend/internal/config"
	"level_tracker_backend/internal/model"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioLoader reads the document from a MinIO (or any S3 compatible) bucket.
type MinioLoader struct {
	Config *config.SourceConfig
	Client *minio.Client
}

func NewMinioLoader(cfg *config.SourceConfig) (*MinioLoader, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioLoader{Config: cfg, Client: client}, nil
}

func (l *MinioLoader) Load(ctx context.Context) ([]model.Level, error) {
	obj, err := l.Client.GetObject(ctx, l.Config.MinioBucket, l.Config.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	defer obj.Close()

	levels, err := Decode(obj)
	if err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	return levels, nil
}

func (l *MinioLoader) Describe() string {
	return "minio:" + l.Config.MinioBucket + "/" + l.Config.ObjectKey
}

// OSSLoader reads the document from an Aliyun OSS bucket.
type OSSLoader struct {
	Config *config.SourceConfig
	Client *oss.Client
}

func NewOSSLoader(cfg *config.SourceConfig) (*OSSLoader, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSLoader{Config: cfg, Client: client}, nil
}

func (l *OSSLoader) Load(ctx context.Context) ([]model.Level, error) {
	bucket, err := l.Client.Bucket(l.Config.OSSBucket)
	if err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	body, err := bucket.GetObject(l.Config.ObjectKey, oss.WithContext(ctx))
	if err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	defer body.Close()

	levels, err := Decode(body)
	if err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	return levels, nil
}

func (l *OSSLoader) Describe() string {
	return "oss:" + l.Config.OSSBucket + "/" + l.Config.ObjectKey
}
