package main

import (
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gocloud.dev/blob"
	"s3props"
	"s3props/config"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		panic(err)
	}
	setupLogging(cfg.Log)
	if err := cfg.S3.Validate(); err != nil {
		panic(err)
	}

	ctx := context.TODO()
	fetcher, closeFn, err := newFetcher(ctx, cfg.S3)
	if err != nil {
		panic(err)
	}
	defer closeFn()

	configurer, err := s3props.NewConfigurer(fetcher,
		s3props.WithEncoding(encoding(cfg.Properties.Encoding)),
		s3props.WithIgnoreUnresolvable(cfg.Properties.IgnoreUnresolvable),
	)
	if err != nil {
		panic(err)
	}
	src := configurer.MustProcess(ctx, &cfg.Server)

	r := gin.Default()
	r.GET("/health", HealthHandle())
	r.GET("/properties", PropertiesHandle(src))
	r.GET("/greeting", GreetingHandle(cfg.Server))
	err = r.Run(cfg.Server.Addr)
	if err != nil {
		panic(err)
	}
}

func newFetcher(ctx context.Context, cfg config.S3) (s3props.Fetcher, func(), error) {
	if cfg.BlobURL != "" {
		bucket, err := blob.OpenBucket(ctx, cfg.BlobURL)
		if err != nil {
			return nil, nil, err
		}
		name := cfg.Bucket
		if name == "" {
			name = cfg.BlobURL
		}
		f, err := s3props.NewBlobFetcher(bucket, name, cfg.Key)
		if err != nil {
			_ = bucket.Close()
			return nil, nil, err
		}
		return f, func() {
			if err := bucket.Close(); err != nil {
				logrus.Errorln("Error closing bucket", err)
			}
		}, nil
	}

	var opts []func(*s3config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, s3config.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		opts = append(opts, s3config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	sdkConfig, err := s3config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}
	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if cfg.EndPoint != "" {
			o.BaseEndpoint = aws.String(cfg.EndPoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})
	f, err := s3props.NewS3Fetcher(client, cfg.Bucket, cfg.Key)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {}, nil
}

func setupLogging(cfg config.Log) {
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("Unknown log level %q, using info", cfg.Level)
	}
	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func encoding(name string) s3props.Encoding {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "utf8":
		return s3props.UTF8
	default:
		return s3props.ISO88591
	}
}
