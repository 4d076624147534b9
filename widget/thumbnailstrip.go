package widget

import (
	"fmt"
	"image"

	"github.com/AllenDang/giu"

	"vincit.fi/async-image/api"
	"vincit.fi/async-image/api/apitype"
	"vincit.fi/async-image/imagetools"
	"vincit.fi/async-image/state"
)

const stripCellSize = 40

type thumbnailEntry struct {
	model   apitype.Model
	state   *state.ImageState
	texture *imageTexture

	thumbnailKey string
	thumbnail    image.Image
}

// thumbnailImage downscales the decoded image once per load and caches
// the result; nil while the load is still outstanding or failed.
func (s *thumbnailEntry) thumbnailImage() image.Image {
	loadedImage := s.state.Image()
	if loadedImage == nil {
		return nil
	}

	key := fmt.Sprintf("%d", s.state.Generation())
	if s.thumbnailKey == key && s.thumbnail != nil {
		return s.thumbnail
	}

	s.thumbnail = imagetools.Thumbnail(loadedImage)
	s.thumbnailKey = key
	return s.thumbnail
}

// ThumbnailStripWidget renders a row of small previews, one per model,
// each loading independently. Clicking a preview selects its model.
type ThumbnailStripWidget struct {
	imageLoader api.ImageLoader
	entries     []*thumbnailEntry
	selected    int
	onSelect    func(index int, model apitype.Model)
}

func ThumbnailStrip(imageLoader api.ImageLoader) *ThumbnailStripWidget {
	return &ThumbnailStripWidget{
		imageLoader: imageLoader,
		selected:    -1,
	}
}

// SetModels rebinds the strip and starts a load per model. The first
// model becomes the selection, without firing the callback.
func (s *ThumbnailStripWidget) SetModels(models []apitype.Model) *ThumbnailStripWidget {
	entries := make([]*thumbnailEntry, 0, len(models))
	for _, model := range models {
		imageState := state.NewImageState(s.imageLoader)
		imageState.SetModel(model)
		entries = append(entries, &thumbnailEntry{
			model:   model,
			state:   imageState,
			texture: &imageTexture{},
		})
	}

	s.entries = entries
	if len(entries) > 0 {
		s.selected = 0
	} else {
		s.selected = -1
	}
	return s
}

func (s *ThumbnailStripWidget) OnSelect(callback func(index int, model apitype.Model)) *ThumbnailStripWidget {
	s.onSelect = callback
	return s
}

func (s *ThumbnailStripWidget) Select(index int) {
	if index < 0 || index >= len(s.entries) {
		return
	}
	s.selected = index
	if s.onSelect != nil {
		s.onSelect(index, s.entries[index].model)
	}
}

func (s *ThumbnailStripWidget) Selected() int {
	return s.selected
}

func (s *ThumbnailStripWidget) Count() int {
	return len(s.entries)
}

func (s *ThumbnailStripWidget) Build() {
	var items []giu.Widget
	for index, entry := range s.entries {
		index := index

		thumbnail := entry.thumbnailImage()
		if thumbnail == nil {
			// Still loading or failed; a numbered button keeps the slot
			// selectable.
			items = append(items, giu.Button(fmt.Sprintf("%d", index+1)).
				OnClick(func() {
					s.Select(index)
				}).
				Size(stripCellSize, stripCellSize))
			continue
		}

		texture := entry.texture.textureFor(fmt.Sprintf("thumb:%d:%s", index, entry.thumbnailKey), thumbnail)
		if texture == nil {
			items = append(items, giu.Dummy(stripCellSize, stripCellSize))
			continue
		}

		bounds := thumbnail.Bounds()
		items = append(items, giu.ImageButton(texture).
			Size(float32(bounds.Dx()), float32(bounds.Dy())).
			OnClick(func() {
				s.Select(index)
			}))
	}
	giu.Row(items...).Build()
}
