package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// s3API is the subset of the S3 client used for metadata and deletes.
type s3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// uploader streams bodies of any length, switching to multipart when needed.
type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// r2Client talks to Cloudflare R2 (or any S3 endpoint) through aws-sdk-go-v2.
type r2Client struct {
	api      s3API
	uploader uploader
	// transport is set once the SDK builds its HTTP client.
	transport *atomic.Pointer[http.Transport]
}

func newR2Client(ctx context.Context, cfg Config) (*r2Client, error) {
	// LoadDefaultConfig extends this client (AWS_CA_BUNDLE), so it has to be
	// an awshttp.BuildableClient.
	transport := new(atomic.Pointer[http.Transport])
	httpClient := awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
		tuneTransport(tr, timeout(cfg))
		transport.Store(tr)
	})

	region := cfg.Region
	if region == "" {
		region = "auto" // R2 signs with the "auto" region
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsconfig.WithRegion(region),
		awsconfig.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(withScheme(cfg.Endpoint, cfg.UseSSL))
		o.UsePathStyle = true
		// R2 rejects some of the newer default integrity checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &r2Client{
		api:       client,
		uploader:  manager.NewUploader(client),
		transport: transport,
	}, nil
}

func (c *r2Client) StatObject(ctx context.Context, bucketName, objectName string) (ObjectInfo, error) {
	out, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectName),
	})
	if err != nil {
		return ObjectInfo{}, fromAWS(err)
	}
	return ObjectInfo{
		Key:          objectName,
		Size:         aws.ToInt64(out.ContentLength),
		ETag:         aws.ToString(out.ETag),
		ContentType:  aws.ToString(out.ContentType),
		LastModified: aws.ToTime(out.LastModified),
	}, nil
}

func (c *r2Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, opts PutOptions) (ObjectInfo, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectName),
		Body:   reader,
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}

	var optFns []func(*manager.Uploader)
	if opts.DisablePayloadSigning {
		optFns = append(optFns, unsignedPayload)
	}

	out, err := c.uploader.Upload(ctx, input, optFns...)
	if err != nil {
		return ObjectInfo{}, fromAWS(err)
	}
	return ObjectInfo{
		Key:         objectName,
		Size:        size,
		ETag:        aws.ToString(out.ETag),
		ContentType: opts.ContentType,
	}, nil
}

func (c *r2Client) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectName),
	})
	if err != nil {
		return fromAWS(err)
	}
	return nil
}

func (c *r2Client) Close() error {
	if c.transport == nil {
		return nil
	}
	if tr := c.transport.Load(); tr != nil {
		tr.CloseIdleConnections()
	}
	return nil
}

func unsignedPayload(u *manager.Uploader) {
	u.ClientOptions = append(u.ClientOptions, func(o *s3.Options) {
		o.APIOptions = append(o.APIOptions, v4.SwapComputePayloadSHA256ForUnsignedPayloadMiddleware)
	})
}

// fromAWS converts a smithy API error into a *ProviderError. Errors that never
// reached the service (dial failures, cancellation) are returned unchanged.
func fromAWS(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	status := 0
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		status = respErr.HTTPStatusCode()
	}

	message := apiErr.ErrorMessage()
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = apiErr.Error()
	}

	return &ProviderError{
		StatusCode: status,
		Code:       apiErr.ErrorCode(),
		Message:    message,
		Cause:      errors.Unwrap(apiErr),
	}
}
