package delivery

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"coverage-report/internal/reporting"
)

// s3API is the slice of s3.Client used here, split out so tests can stub it.
type s3API interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3DocumentDestination uploads the document layout (and chart, when
// present) to an S3 "folder": prefix/YYYY/MM/DD/.
type S3DocumentDestination struct {
	client s3API
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3DocumentDestination creates a destination over an S3 client.
func NewS3DocumentDestination(client *s3.Client, bucket, prefix string, logger zerolog.Logger) *S3DocumentDestination {
	return &S3DocumentDestination{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Compile-time interface check.
var _ Destination = (*S3DocumentDestination)(nil)

// Name implements Destination.
func (d *S3DocumentDestination) Name() string {
	return "s3-documents"
}

// Deliver uploads the markdown document and, when present, the chart PNG
// next to it. The document is the delivery; a chart upload failure is
// logged only.
func (d *S3DocumentDestination) Deliver(ctx context.Context, rendered *reporting.RenderedReport) (string, error) {
	folder := path.Join(d.prefix, rendered.Report.WindowEnd.Format("2006/01/02"))

	docKey := path.Join(folder, rendered.DocumentName)
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(docKey),
		Body:        bytes.NewReader([]byte(rendered.Document)),
		ContentType: aws.String("text/markdown"),
	})
	if err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}

	if len(rendered.Chart) > 0 {
		chartKey := path.Join(folder, rendered.ChartName)
		_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(d.bucket),
			Key:         aws.String(chartKey),
			Body:        bytes.NewReader(rendered.Chart),
			ContentType: aws.String("image/png"),
		})
		if err != nil {
			d.logger.Warn().Err(err).Msg("chart upload failed, document already delivered")
		}
	}

	return fmt.Sprintf("s3://%s/%s", d.bucket, docKey), nil
}
