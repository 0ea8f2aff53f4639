// Package assets rehydrates remote images: download from the old location,
// upload into the new asset store, return a typed reference.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/casarosier/cms-migrate/pkg/logger"
	"github.com/casarosier/cms-migrate/pkg/models"
)

// Uploader stores images in an S3-compatible bucket.
type Uploader struct {
	svc    s3iface.S3API
	bucket string
	httpc  *http.Client
}

// New creates an uploader against an S3-compatible endpoint.
func New(accountID, accessKey, secretKey, bucket string) (*Uploader, error) {
	if accountID == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return nil, fmt.Errorf("missing asset store credentials")
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String("auto"),
		S3ForcePathStyle: aws.Bool(true),
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, err
	}

	return &Uploader{
		svc:    s3.New(sess),
		bucket: bucket,
		httpc:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// NewWithClient wires explicit transport and storage clients, for tests.
func NewWithClient(svc s3iface.S3API, bucket string, httpc *http.Client) *Uploader {
	return &Uploader{svc: svc, bucket: bucket, httpc: httpc}
}

// UploadImage downloads rawURL and stores the bytes under the basename of
// the URL path. Any failure yields nil ("no image") rather than an error,
// so a broken image never aborts the owning entity's migration. Values
// that are not absolute http URLs return nil without any network call.
//
// There is no dedup: uploading the same URL twice stores two objects. That
// matches the system being replaced; a URL-keyed cache would change the
// observable asset count.
func (u *Uploader) UploadImage(ctx context.Context, rawURL string) *models.Image {
	if rawURL == "" || !strings.HasPrefix(rawURL, "http") {
		return nil
	}

	logger.Infof("Uploading image: %s", rawURL)

	parsed, err := url.Parse(rawURL)
	if err != nil {
		logger.Errorf("image %s: invalid URL: %v", rawURL, err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		logger.Errorf("image %s: %v", rawURL, err)
		return nil
	}
	resp, err := u.httpc.Do(req)
	if err != nil {
		logger.Errorf("image %s: download failed: %v", rawURL, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Errorf("image %s: download failed: %s", rawURL, resp.Status)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Errorf("image %s: read failed: %v", rawURL, err)
		return nil
	}

	key := path.Base(parsed.Path)
	if key == "" || key == "/" || key == "." {
		key = "image"
	}

	_, err = u.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeFor(key)),
	})
	if err != nil {
		logger.Errorf("image %s: upload failed: %v", rawURL, err)
		return nil
	}

	return &models.Image{
		Type: "image",
		Asset: models.AssetRef{
			Type: "reference",
			Ref:  "image-" + strings.ReplaceAll(key, ".", "-"),
		},
	}
}

func contentTypeFor(key string) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
