package loader

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gammazero/workerpool"

	"vincit.fi/async-image/api"
	"vincit.fi/async-image/api/apitype"
	"vincit.fi/async-image/common/logger"
	"vincit.fi/async-image/resource"
)

const (
	loadWorkers        = 4
	httpRequestTimeout = time.Second * 30
)

type Loader struct {
	httpClient *http.Client
	registry   *resource.Registry
	pool       *workerpool.WorkerPool

	api.ImageLoader
}

func NewImageLoader(registry *resource.Registry) *Loader {
	return &Loader{
		httpClient: &http.Client{Timeout: httpRequestTimeout},
		registry:   registry,
		pool:       workerpool.New(loadWorkers),
	}
}

// Load resolves the model to a decoded image. Exactly one fetch
// strategy runs per call, chosen by the model's kind.
func (s *Loader) Load(ctx context.Context, model apitype.Model) (image.Image, error) {
	if !model.IsValid() {
		return nil, api.ErrInvalidModel
	}

	var loadedImage image.Image
	var err error
	switch model.Kind() {
	case apitype.KindURL:
		var parsed *url.URL
		if parsed, err = url.Parse(model.Url()); err == nil {
			loadedImage, err = s.loadUrl(ctx, parsed)
		}
	case apitype.KindURLValue:
		loadedImage, err = s.loadUrl(ctx, model.UrlValue())
	case apitype.KindFile:
		loadedImage, err = s.loadFile(model.Path())
	case apitype.KindResource:
		loadedImage, err = s.loadResource(model.Resource())
	case apitype.KindReader:
		loadedImage, err = decodeReader(model.Reader())
	default:
		return nil, api.ErrInvalidModel
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", api.ErrLoadFailed, model, err)
	}
	return loadedImage, nil
}

func (s *Loader) loadUrl(ctx context.Context, imageUrl *url.URL) (image.Image, error) {
	if imageUrl == nil {
		return nil, fmt.Errorf("no url given")
	}
	if imageUrl.Scheme != "https" && imageUrl.Scheme != "http" {
		return nil, fmt.Errorf("unsupported scheme '%s'", imageUrl.Scheme)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, imageUrl.String(), nil)
	if err != nil {
		return nil, err
	}

	response, err := s.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s from '%s'", response.Status, imageUrl)
	}
	return decodeReader(response.Body)
}

func (s *Loader) loadFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return decodeReader(file)
}

func (s *Loader) loadResource(resourceId apitype.ResourceId) (image.Image, error) {
	reader, err := s.registry.Open(resourceId)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return decodeReader(reader)
}

// LoadAsync runs the load on the worker pool and delivers exactly one
// callback, unless the returned handle is cancelled first in which case
// neither fires. Completion order of overlapping loads is not defined
// here; callers that care track their own generation (see state).
func (s *Loader) LoadAsync(model apitype.Model, onSuccess func(image.Image), onError func(error)) api.LoadHandle {
	request := newRequest()
	if logger.IsLogLevel(logger.DEBUG) {
		logger.Debug.Printf("Load %s queued for %s", request.Id(), model)
	}

	s.pool.Submit(func() {
		startTime := time.Now()
		loadedImage, err := s.Load(request.Context(), model)

		if !request.markDelivered() {
			logger.Debug.Printf("Load %s superseded, dropping result for %s", request.Id(), model)
			return
		}

		if err != nil {
			logger.Error.Printf("Load %s: %s", request.Id(), err)
			onError(err)
		} else {
			if logger.IsLogLevel(logger.TRACE) {
				logger.Trace.Printf("'%s': loaded in %s", model, time.Since(startTime))
			}
			onSuccess(loadedImage)
		}
	})
	return request
}

func (s *Loader) Close() {
	s.pool.StopWait()
}
