// Package uploads stores animal photos in S3-compatible object storage and
// registers them with the backend.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3Client = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// PhotoRegistrar attaches an uploaded photo URL to an animal.
type PhotoRegistrar interface {
	AddPhoto(ctx context.Context, id, photoURL string) error
}

type Config struct {
	Bucket       string
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	PublicURL    string
	UsePathStyle bool
}

type Uploader struct {
	cfg    Config
	s3     objectPutter
	photos PhotoRegistrar
	now    func() time.Time
}

// New builds an uploader. Static credentials are used when an access key
// is configured; otherwise the default AWS credential chain applies.
func New(ctx context.Context, cfg Config, photos PhotoRegistrar) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("uploads: bucket is not configured")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3Client(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Uploader{cfg: cfg, s3: client, photos: photos, now: time.Now}, nil
}

// StorageKey lays photos out as animals/<id>/<yyyy>/<mm>/<uuid><ext>.
func StorageKey(animalID, ext string, now time.Time) string {
	return fmt.Sprintf("animals/%s/%04d/%02d/%s%s",
		animalID, now.Year(), int(now.Month()), uuid.NewString(), strings.ToLower(ext))
}

// ObjectURL is the public URL of key.
func (u *Uploader) ObjectURL(key string) string {
	switch {
	case u.cfg.PublicURL != "":
		return strings.TrimRight(u.cfg.PublicURL, "/") + "/" + key
	case u.cfg.Endpoint != "":
		return strings.TrimRight(u.cfg.Endpoint, "/") + "/" + u.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}

// UploadAnimalPhoto uploads the file at path and attaches it to the animal.
// It returns the photo URL.
func (u *Uploader) UploadAnimalPhoto(ctx context.Context, animalID, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !photoExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", err
	}

	key := StorageKey(animalID, ext, u.now())
	_, err = u.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(st.Size()),
		ContentType:   aws.String(mime.TypeByExtension(ext)),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	url := u.ObjectURL(key)
	if err := u.photos.AddPhoto(ctx, animalID, url); err != nil {
		return "", fmt.Errorf("register photo: %w", err)
	}
	return url, nil
}
