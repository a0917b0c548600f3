package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"nautica/config"
	"nautica/infras/otel"
	"nautica/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// S3 resolves stored boat photo objects into browser-usable URLs.
// Photos are uploaded by the fleet back office, this service only reads them.
type S3 interface {
	PresignObjectURL(ctx context.Context, bucketName, objectKey string) (url string, err error)
	ObjectKeyFromURL(bucketName, url string) (objectKey string)
}

type s3Impl struct {
	Client  *s3.Client
	Presign *s3.PresignClient
	Config  *config.Config
	otel    otel.Otel
}

func (svc *s3Impl) PresignObjectURL(ctx context.Context, bucketName, objectKey string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".PresignObjectURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucketName,
	})

	expiry := time.Duration(svc.Config.External.S3.PresignExpiryMinutes) * time.Minute

	request, err := svc.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		log.Error().Err(err).Str("objectKey", objectKey).Msg("failed to presign S3 object URL")

		return constant.Empty, fmt.Errorf("failed to presign S3 object URL: %w", err)
	}

	return request.URL, nil
}

func (svc *s3Impl) ObjectKeyFromURL(bucketName, url string) (objectKey string) {
	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	apiEndpoint := svc.Config.External.S3.APIEndpoint
	bucketURL := fmt.Sprintf("%s/%s/", apiEndpoint, bucketName)
	if strings.HasPrefix(url, bucketURL) {
		key := strings.TrimPrefix(url, bucketURL)
		if idx := strings.IndexByte(key, '?'); idx >= 0 {
			key = key[:idx]
		}

		return path.Clean(key)
	}

	return constant.Empty
}

func New(config *config.Config, otel otel.Otel) S3 {
	endpoint := config.External.S3.APIEndpoint
	accessKeyID := config.External.S3.AccessKeyID
	secretAccessKey := config.External.S3.SecretAccessKey

	staticProvider := credentials.NewStaticCredentialsProvider(
		accessKeyID,
		secretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)

	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		Client:  s3Client,
		Presign: s3.NewPresignClient(s3Client),
		Config:  config,
		otel:    otel,
	}
}
