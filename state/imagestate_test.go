package state

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"vincit.fi/async-image/api"
	"vincit.fi/async-image/api/apitype"
	"vincit.fi/async-image/event"
)

type fakeLoad struct {
	model     apitype.Model
	onSuccess func(image.Image)
	onError   func(error)

	mux       sync.Mutex
	cancelled bool
}

func (s *fakeLoad) Cancel() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.cancelled = true
}

func (s *fakeLoad) IsCancelled() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.cancelled
}

// fakeLoader records every load attempt and lets the test drive
// completions in any order, including after being superseded.
type fakeLoader struct {
	mux   sync.Mutex
	loads []*fakeLoad
}

func (s *fakeLoader) Load(ctx context.Context, model apitype.Model) (image.Image, error) {
	return nil, errors.New("not used")
}

func (s *fakeLoader) LoadAsync(model apitype.Model, onSuccess func(image.Image), onError func(error)) api.LoadHandle {
	s.mux.Lock()
	defer s.mux.Unlock()

	load := &fakeLoad{model: model, onSuccess: onSuccess, onError: onError}
	s.loads = append(s.loads, load)
	return load
}

func (s *fakeLoader) Close() {}

func (s *fakeLoader) load(index int) *fakeLoad {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.loads[index]
}

func (s *fakeLoader) loadCount() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.loads)
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 2, 2))
}

func TestImageState_InitiallyAbsent(t *testing.T) {
	a := assert.New(t)

	imageState := NewImageState(&fakeLoader{})

	a.Nil(imageState.Image())
	a.Nil(imageState.Err())
	a.False(imageState.IsLoading())
}

func TestImageState_SuccessfulLoad(t *testing.T) {
	a := assert.New(t)

	imageLoader := &fakeLoader{}
	imageState := NewImageState(imageLoader)

	imageState.SetModel(apitype.ModelFromFile("a.png"))
	a.True(imageState.IsLoading())
	a.Equal(1, imageLoader.loadCount())

	loadedImage := testImage()
	imageLoader.load(0).onSuccess(loadedImage)

	a.Same(loadedImage, imageState.Image())
	a.Nil(imageState.Err())
	a.False(imageState.IsLoading())
}

func TestImageState_FailedLoad(t *testing.T) {
	a := assert.New(t)

	imageLoader := &fakeLoader{}
	imageState := NewImageState(imageLoader)

	imageState.SetModel(apitype.ModelFromFile("a.png"))
	loadErr := errors.New("boom")
	imageLoader.load(0).onError(loadErr)

	a.Nil(imageState.Image())
	a.Same(loadErr, imageState.Err())
	a.False(imageState.IsLoading())
}

func TestImageState_SameIdentityDoesNotReload(t *testing.T) {
	a := assert.New(t)

	imageLoader := &fakeLoader{}
	imageState := NewImageState(imageLoader)

	imageState.SetModel(apitype.ModelFromFile("a.png"))
	imageLoader.load(0).onSuccess(testImage())

	// A different Model value with the same identity key.
	imageState.SetModel(apitype.ModelFromFile("a.png"))

	a.Equal(1, imageLoader.loadCount())
	a.NotNil(imageState.Image())
}

func TestImageState_NewIdentityClearsAndReloads(t *testing.T) {
	a := assert.New(t)

	imageLoader := &fakeLoader{}
	imageState := NewImageState(imageLoader)

	imageState.SetModel(apitype.ModelFromFile("a.png"))
	imageLoader.load(0).onSuccess(testImage())
	a.NotNil(imageState.Image())

	imageState.SetModel(apitype.ModelFromFile("b.png"))

	a.Equal(2, imageLoader.loadCount())
	a.Nil(imageState.Image())
	a.True(imageState.IsLoading())
	a.True(imageLoader.load(0).IsCancelled())
}

func TestImageState_StaleCompletionIsDropped(t *testing.T) {
	a := assert.New(t)

	imageLoader := &fakeLoader{}
	imageState := NewImageState(imageLoader)

	imageState.SetModel(apitype.ModelFromFile("slow.png"))
	imageState.SetModel(apitype.ModelFromFile("fast.png"))

	fastImage := testImage()
	imageLoader.load(1).onSuccess(fastImage)

	// The superseded load finishes late; the displayed image must stay
	// the one from the most recently initiated request.
	slowImage := testImage()
	imageLoader.load(0).onSuccess(slowImage)

	a.Same(fastImage, imageState.Image())
	a.False(imageState.IsLoading())
}

func TestImageState_StaleErrorDoesNotClobber(t *testing.T) {
	a := assert.New(t)

	imageLoader := &fakeLoader{}
	imageState := NewImageState(imageLoader)

	imageState.SetModel(apitype.ModelFromFile("slow.png"))
	imageState.SetModel(apitype.ModelFromFile("fast.png"))

	fastImage := testImage()
	imageLoader.load(1).onSuccess(fastImage)
	imageLoader.load(0).onError(errors.New("late failure"))

	a.Same(fastImage, imageState.Image())
	a.Nil(imageState.Err())
}

func TestImageState_Reset(t *testing.T) {
	a := assert.New(t)

	imageLoader := &fakeLoader{}
	imageState := NewImageState(imageLoader)

	imageState.SetModel(apitype.ModelFromFile("a.png"))
	imageState.Reset()

	a.True(imageLoader.load(0).IsCancelled())
	a.Nil(imageState.Image())
	a.False(imageState.IsLoading())

	// A completion racing the reset is stale by generation.
	imageLoader.load(0).onSuccess(testImage())
	a.Nil(imageState.Image())
}

type recordingSender struct {
	mux    sync.Mutex
	topics []string
}

func (s *recordingSender) SendToTopic(topic event.Topic) {
	s.record(string(topic))
}

func (s *recordingSender) SendToTopicWithData(topic event.Topic, data ...interface{}) {
	s.record(string(topic))
}

func (s *recordingSender) record(topic string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.topics = append(s.topics, topic)
}

func (s *recordingSender) recorded() []string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return append([]string{}, s.topics...)
}

func TestImageState_PublishesCompletions(t *testing.T) {
	a := assert.New(t)

	imageLoader := &fakeLoader{}
	sender := &recordingSender{}
	imageState := NewImageStateWithSender(imageLoader, sender)

	imageState.SetModel(apitype.ModelFromFile("a.png"))
	imageLoader.load(0).onSuccess(testImage())

	a.Equal([]string{string(event.ImageLoaded), string(event.StateChanged)}, sender.recorded())

	imageState.SetModel(apitype.ModelFromFile("b.png"))
	imageLoader.load(1).onError(errors.New("boom"))

	a.Equal([]string{
		string(event.ImageLoaded), string(event.StateChanged),
		string(event.ImageFailed), string(event.StateChanged),
	}, sender.recorded())
}
