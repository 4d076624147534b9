package api

import (
	"context"
	"errors"
	"image"

	"vincit.fi/async-image/api/apitype"
)

var (
	// ErrInvalidModel is reported when a load is attempted with the zero
	// Model. This is a caller configuration error and is surfaced through
	// the error callback instead of being dropped.
	ErrInvalidModel = errors.New("invalid model: no source kind set")
	// ErrLoadFailed wraps every fetch or decode failure of a load attempt.
	ErrLoadFailed = errors.New("image load failed")
)

// ImageLoader resolves a model to a decoded image. One load attempt
// produces exactly one outcome: a non-nil image or a non-nil error.
type ImageLoader interface {
	Load(ctx context.Context, model apitype.Model) (image.Image, error)
	// LoadAsync performs the load on a background worker and invokes
	// exactly one of the callbacks. The returned handle cancels delivery
	// of a superseded load.
	LoadAsync(model apitype.Model, onSuccess func(image.Image), onError func(error)) LoadHandle
	Close()
}

// LoadHandle refers to one in-flight load attempt.
type LoadHandle interface {
	Cancel()
	IsCancelled() bool
}
