package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"gepe-server/internal/observability"
)

// Upload folders, one per content area so assets stay browsable in the
// Cloudinary console.
const (
	FolderHero     = "gepe/hero"
	FolderProducts = "gepe/products"
	FolderClubs    = "gepe/clubs"
)

var (
	ErrNotConfigured = errors.New("cloudinary is not configured")
	ErrUploadFailed  = errors.New("cloudinary upload failed")
)

// CloudinaryClient wraps the Cloudinary upload API. A client built without
// credentials stays usable: IsEnabled reports false and every call returns
// ErrNotConfigured, so callers degrade instead of crashing.
type CloudinaryClient struct {
	cld    *cloudinary.Cloudinary
	logger *observability.Logger
}

// NewCloudinaryClient creates a Cloudinary client from the three credential
// parts. Missing credentials produce a disabled client, not an error.
func NewCloudinaryClient(cloudName, apiKey, apiSecret string, logger *observability.Logger) *CloudinaryClient {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return &CloudinaryClient{logger: logger}
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		logger.Error(context.Background(), "failed to initialize cloudinary client", err)
		return &CloudinaryClient{logger: logger}
	}
	return &CloudinaryClient{cld: cld, logger: logger}
}

// IsEnabled reports whether uploads are configured
func (c *CloudinaryClient) IsEnabled() bool {
	return c != nil && c.cld != nil
}

// UploadImage uploads file (an io.Reader, file path or remote URL) into the
// given folder and returns the delivery URL and the public ID needed to
// delete the asset later.
func (c *CloudinaryClient) UploadImage(ctx context.Context, file interface{}, folder string) (string, string, error) {
	if !c.IsEnabled() {
		return "", "", ErrNotConfigured
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "upload_folder", Value: folder})

	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to upload image to cloudinary", err)
		return "", "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if res.Error.Message != "" {
		err := fmt.Errorf("%w: %s", ErrUploadFailed, res.Error.Message)
		c.logger.Error(ctx, "cloudinary rejected the upload", err)
		return "", "", err
	}

	return res.SecureURL, res.PublicID, nil
}

// UploadVideo uploads a video asset into the given folder. Same contract as
// UploadImage.
func (c *CloudinaryClient) UploadVideo(ctx context.Context, file interface{}, folder string) (string, string, error) {
	if !c.IsEnabled() {
		return "", "", ErrNotConfigured
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "upload_folder", Value: folder})

	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "video",
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to upload video to cloudinary", err)
		return "", "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if res.Error.Message != "" {
		err := fmt.Errorf("%w: %s", ErrUploadFailed, res.Error.Message)
		c.logger.Error(ctx, "cloudinary rejected the upload", err)
		return "", "", err
	}

	return res.SecureURL, res.PublicID, nil
}

// DeleteImage removes a previously uploaded asset. A missing asset is not an
// error; the caller only cares that it is gone.
func (c *CloudinaryClient) DeleteImage(ctx context.Context, publicID string) error {
	if !c.IsEnabled() {
		return ErrNotConfigured
	}
	if publicID == "" {
		return nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "public_id", Value: publicID})

	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		c.logger.Error(ctx, "failed to delete image from cloudinary", err)
		return err
	}
	if res.Result != "ok" && res.Result != "not found" {
		err := fmt.Errorf("cloudinary destroy returned %q", res.Result)
		c.logger.Error(ctx, "failed to delete image from cloudinary", err)
		return err
	}
	return nil
}
