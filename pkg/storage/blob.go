package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"reelhub/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// extPattern keeps object-name extensions to alphanumerics and dots so a
// client-supplied extension can never smuggle path separators or query
// syntax into a signed URL.
var extPattern = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// Client mints time-limited, write-scoped upload URLs against the video and
// poster buckets, and builds public URLs from the configured bases.
type Client struct {
	s3Client         *s3.S3
	videoBucket      string
	posterBucket     string
	videoPublicBase  string
	posterPublicBase string
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.AWSAccessKeyID == "" || cfg.AWSSecretAccessKey == "" {
		return nil, fmt.Errorf("storage: missing access credentials")
	}
	if cfg.S3VideoBucket == "" || cfg.S3PosterBucket == "" {
		return nil, fmt.Errorf("storage: missing bucket configuration")
	}
	if cfg.VideoPublicBase == "" || cfg.PosterPublicBase == "" {
		return nil, fmt.Errorf("storage: missing public base configuration")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{
		s3Client:         s3.New(sess),
		videoBucket:      cfg.S3VideoBucket,
		posterBucket:     cfg.S3PosterBucket,
		videoPublicBase:  strings.TrimSuffix(cfg.VideoPublicBase, "/"),
		posterPublicBase: strings.TrimSuffix(cfg.PosterPublicBase, "/"),
	}, nil
}

// NewObjectName generates a globally unique object name carrying the given
// (sanitized) extension.
func NewObjectName(ext string) string {
	clean := SanitizeExt(ext)
	if clean == "" {
		return uuid.New().String()
	}
	if !strings.HasPrefix(clean, ".") {
		clean = "." + clean
	}
	return uuid.New().String() + clean
}

func SanitizeExt(ext string) string {
	return extPattern.ReplaceAllString(ext, "")
}

// IssueUploadURL returns a presigned PUT URL for the video bucket. The URL
// only allows writing the named object and expires after ttl.
func (c *Client) IssueUploadURL(objectName string, ttl time.Duration) (string, error) {
	return c.presignPut(c.videoBucket, objectName, ttl)
}

// IssuePosterUploadURL is IssueUploadURL against the posters bucket.
func (c *Client) IssuePosterUploadURL(objectName string, ttl time.Duration) (string, error) {
	return c.presignPut(c.posterBucket, objectName, ttl)
}

func (c *Client) presignPut(bucket, objectName string, ttl time.Duration) (string, error) {
	req, _ := c.s3Client.PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectName),
	})

	url, err := req.Presign(ttl)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload URL: %w", err)
	}
	return url, nil
}

// PublicURL builds the read URL for a finalized video object. It assumes the
// bucket (or the CDN in front of it) allows public reads.
func (c *Client) PublicURL(objectName string) string {
	return c.videoPublicBase + "/" + objectName
}

func (c *Client) PosterPublicURL(objectName string) string {
	return c.posterPublicBase + "/" + objectName
}
