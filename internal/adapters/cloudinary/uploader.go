// Package cloudinary implements the AssetUploader contract on the Cloudinary
// upload API. The core never inspects the binary payload; it forwards it and
// stores the returned secure URL.
package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
)

// Uploader uploads assets under a named preset.
type Uploader struct {
	client *cld.Cloudinary
	preset string
	log    zerolog.Logger
}

func New(cloudName, apiKey, apiSecret, preset string, log zerolog.Logger) (*Uploader, error) {
	client, err := cld.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}
	return &Uploader{
		client: client,
		preset: preset,
		log:    log.With().Str("component", "cloudinary").Logger(),
	}, nil
}

// Upload sends the file and returns its stable secure URL. Provider failures
// surface the provider's message; there is no automatic retry.
func (u *Uploader) Upload(ctx context.Context, asset contracts.Asset) (string, error) {
	res, err := u.client.Upload.Upload(ctx, bytes.NewReader(asset.Content), uploader.UploadParams{
		UploadPreset:     u.preset,
		FilenameOverride: asset.FileName,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("cloudinary upload: no secure url in response")
	}
	u.log.Debug().Str("file", asset.FileName).Msg("asset uploaded")
	return res.SecureURL, nil
}
