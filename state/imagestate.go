package state

import (
	"image"
	"sync"

	"vincit.fi/async-image/api"
	"vincit.fi/async-image/api/apitype"
	"vincit.fi/async-image/common/logger"
	"vincit.fi/async-image/event"
)

// ImageState is one observable cell of "decoded image or absent" bound
// to a model. Setting a model with a new identity starts a new load and
// bumps the generation; completions carrying a stale generation are
// dropped, so the cell never shows a result older than the most
// recently initiated load. The superseded load itself is cancelled so
// it fires no callback at all.
type ImageState struct {
	mux sync.Mutex

	imageLoader api.ImageLoader
	sender      event.Sender

	model      apitype.Model
	modelKey   string
	image      image.Image
	err        error
	loading    bool
	generation int64
	handle     api.LoadHandle
}

func NewImageState(imageLoader api.ImageLoader) *ImageState {
	return &ImageState{
		imageLoader: imageLoader,
	}
}

// NewImageStateWithSender also publishes every completion to the event
// broker: ImageLoaded or ImageFailed with the model, then StateChanged.
func NewImageStateWithSender(imageLoader api.ImageLoader, sender event.Sender) *ImageState {
	return &ImageState{
		imageLoader: imageLoader,
		sender:      sender,
	}
}

// SetModel rebinds the cell. Same identity is a no-op; a new identity
// clears the current value and starts a fresh load.
func (s *ImageState) SetModel(model apitype.Model) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.modelKey == model.Key() && s.modelKey != "" {
		return
	}

	if s.handle != nil {
		s.handle.Cancel()
	}

	s.model = model
	s.modelKey = model.Key()
	s.image = nil
	s.err = nil
	s.loading = true
	s.generation++
	generation := s.generation

	if logger.IsLogLevel(logger.DEBUG) {
		logger.Debug.Printf("State generation %d binds %s", generation, model)
	}

	s.handle = s.imageLoader.LoadAsync(model,
		func(loadedImage image.Image) {
			s.complete(generation, loadedImage, nil)
		},
		func(err error) {
			s.complete(generation, nil, err)
		})
}

// Reset detaches the cell from any model without starting a load.
func (s *ImageState) Reset() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
	s.model = apitype.EmptyModel
	s.modelKey = ""
	s.image = nil
	s.err = nil
	s.loading = false
	s.generation++
}

func (s *ImageState) complete(generation int64, loadedImage image.Image, err error) {
	s.mux.Lock()
	if generation != s.generation {
		s.mux.Unlock()
		logger.Debug.Printf("Dropping stale completion of generation %d (current %d)",
			generation, s.generation)
		return
	}

	s.image = loadedImage
	s.err = err
	s.loading = false
	model := s.model
	s.mux.Unlock()

	if s.sender != nil {
		if err != nil {
			s.sender.SendToTopicWithData(event.ImageFailed, model, err)
		} else {
			s.sender.SendToTopicWithData(event.ImageLoaded, model)
		}
		s.sender.SendToTopic(event.StateChanged)
	}
}

func (s *ImageState) Model() apitype.Model {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.model
}

func (s *ImageState) Image() image.Image {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.image
}

func (s *ImageState) Err() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.err
}

func (s *ImageState) IsLoading() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.loading
}

func (s *ImageState) Generation() int64 {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.generation
}
