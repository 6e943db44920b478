package storage

import (
	"context"
	"mime/multipart"
)

// ImageStore persists an uploaded image and returns the reference the
// caller stores in a food record's image field. The local driver returns
// a /images/... path, the object-store driver an absolute URL; callers
// must accept both forms.
type ImageStore interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}
