package contracts

import "context"

// Asset is a binary file payload handed to the upload collaborator.
// The core never inspects Content; it only forwards it and stores the
// returned reference.
type Asset struct {
	FileName string
	Content  []byte
}

// AssetUploader uploads a file to the image host and returns a stable
// resolvable URL. Failures carry the provider's message; there is no
// automatic retry.
type AssetUploader interface {
	Upload(ctx context.Context, asset Asset) (string, error)
}
