package service

import (
	"context"
	"time"

	"health-tracker-server/config"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// MaxCoverBytes : верхняя граница размера обложки в POST policy
const MaxCoverBytes = 5 << 20

// S3Service : хранилище обложек постов, клиенту выдаются только presigned ссылки
type S3Service struct {
	client   *s3.Client
	bucket   string
	psClient *s3.PresignClient
}

func NewS3Service(ctx context.Context, cfg *config.S3Config) (*S3Service, error) {
	var client *s3.Client

	if cfg.Local {
		accessKey, secretKey := cfg.AccessKey, cfg.SecretKey
		if accessKey == "" {
			accessKey, secretKey = "minioadmin", "minioadmin"
		}
		client = s3.New(s3.Options{
			Region:       cfg.Region,
			Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})

		if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
			return nil, err
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3Service] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
		})
	}

	return &S3Service{
		client:   client,
		psClient: s3.NewPresignClient(client),
		bucket:   cfg.Bucket,
	}, nil
}

// createBucketIfNotExists создает бакет если он не существует
func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err == nil {
		return nil
	}

	if _, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return util.LogError("[S3Service] ошибка создания бакета", err)
	}

	zap.L().Info("[S3Service] бакет создан", zap.String("bucket", bucket))
	return nil
}

// PresignGet : ссылка на чтение обложки
func (s *S3Service) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	req, err := s.psClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expire))
	if err != nil {
		return "", util.LogError("[S3Service] не удалось сгенерировать presigned GET URL", err)
	}

	return req.URL, nil
}

// PresignPost : POST форма для загрузки, policy фиксирует Content-Type и размер файла
func (s *S3Service) PresignPost(ctx context.Context, key, contentType string, expire time.Duration) (*model.PresignedPost, error) {
	req, err := s.psClient.PresignPostObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(o *s3.PresignPostOptions) {
		o.Expires = expire
		o.Conditions = []interface{}{
			map[string]string{"key": key},
			map[string]string{"Content-Type": contentType},
			[]interface{}{"content-length-range", 1, MaxCoverBytes},
		}
	})
	if err != nil {
		return nil, util.LogError("[S3Service] не удалось сгенерировать presigned POST", err)
	}

	fields := make(map[string]string, len(req.Values)+1)
	for name, value := range req.Values {
		fields[name] = value
	}
	fields["Content-Type"] = contentType

	return &model.PresignedPost{URL: req.URL, Fields: fields}, nil
}

func (s *S3Service) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return util.LogError("[S3Service] не удалось удалить объект", err)
	}
	return nil
}
