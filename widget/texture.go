package widget

import (
	"image"
	"sync"

	"github.com/AllenDang/giu"

	"vincit.fi/async-image/common/logger"
	"vincit.fi/async-image/imagetools"
)

// GPU upload and frame request as package variables so tests can run
// without a master window.
var (
	newTexture   = giu.NewTextureFromRgba
	requestFrame = giu.Update
)

// imageTexture uploads a decoded image to the GPU off the render loop.
// While the upload runs, the previous texture keeps showing; the frame
// request after the upload makes Build pick up the new one. The fields
// are shared between the upload goroutine and the render loop, so all
// access goes through the mutex.
type imageTexture struct {
	mux        sync.Mutex
	texture    *giu.Texture
	loadedKey  string
	pendingKey string
}

func (s *imageTexture) textureFor(key string, sourceImage image.Image) *giu.Texture {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.loadedKey == key && s.texture != nil {
		return s.texture
	}
	if s.pendingKey == key {
		return s.texture
	}

	s.pendingKey = key
	go func() {
		rgba := imagetools.ToRGBA(sourceImage)
		texture, err := newTexture(rgba)
		if err != nil {
			logger.Error.Print(err)
			return
		}

		s.mux.Lock()
		// Commit only if no newer key superseded this upload.
		if s.pendingKey == key {
			s.texture = texture
			s.loadedKey = key
		}
		s.mux.Unlock()
		requestFrame()
	}()
	return s.texture
}
