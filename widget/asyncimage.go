package widget

import (
	"fmt"
	"image"
	"image/color"

	"github.com/AllenDang/giu"

	"vincit.fi/async-image/api"
	"vincit.fi/async-image/api/apitype"
	"vincit.fi/async-image/common/logger"
	"vincit.fi/async-image/event"
	"vincit.fi/async-image/imagetools"
	"vincit.fi/async-image/state"
)

type Alignment int

const (
	AlignCenter Alignment = iota
	AlignTopStart
	AlignTopCenter
	AlignTopEnd
	AlignCenterStart
	AlignCenterEnd
	AlignBottomStart
	AlignBottomCenter
	AlignBottomEnd
)

func (s Alignment) factors() (float32, float32) {
	switch s {
	case AlignTopStart:
		return 0, 0
	case AlignTopCenter:
		return 0.5, 0
	case AlignTopEnd:
		return 1, 0
	case AlignCenterStart:
		return 0, 0.5
	case AlignCenterEnd:
		return 1, 0.5
	case AlignBottomStart:
		return 0, 1
	case AlignBottomCenter:
		return 0.5, 1
	case AlignBottomEnd:
		return 1, 1
	}
	return 0.5, 0.5
}

type ContentScale int

const (
	// ScaleFit scales to the largest size fully visible in the region.
	ScaleFit ContentScale = iota
	// ScaleCrop scales to cover the region, clipping the overflow.
	ScaleCrop
	// ScaleStretch fills the region ignoring aspect ratio.
	ScaleStretch
	// ScaleNone draws at the decoded size.
	ScaleNone
)

// AsyncImageWidget renders a model's image asynchronously: the primary
// model while it loads falls back to placeholder, error and fallback
// models in a fixed priority order, with a pending indicator when none
// of them has a decoded image yet. The widget instance is persistent;
// Build only reads the state cells.
type AsyncImageWidget struct {
	imageLoader api.ImageLoader

	primary     *state.ImageState
	placeholder *state.ImageState
	errorModel  *state.ImageState
	fallback    *state.ImageState

	hasPlaceholder bool
	hasError       bool
	hasFallback    bool

	blurRadius         int
	alignment          Alignment
	contentScale       ContentScale
	alpha              float32
	colorFilter        *color.NRGBA
	contentDescription string
	width              float32
	height             float32

	texture      *imageTexture
	processedKey string
	processed    image.Image
}

func AsyncImage(imageLoader api.ImageLoader, sender event.Sender) *AsyncImageWidget {
	return &AsyncImageWidget{
		imageLoader:  imageLoader,
		primary:      state.NewImageStateWithSender(imageLoader, sender),
		placeholder:  state.NewImageState(imageLoader),
		errorModel:   state.NewImageState(imageLoader),
		fallback:     state.NewImageState(imageLoader),
		alignment:    AlignCenter,
		contentScale: ScaleFit,
		alpha:        1,
		texture:      &imageTexture{},
	}
}

// SetModel rebinds the primary model. A new identity starts a new load
// and the display falls back to the placeholder chain until it lands.
func (s *AsyncImageWidget) SetModel(model apitype.Model) *AsyncImageWidget {
	s.primary.SetModel(model)
	return s
}

func (s *AsyncImageWidget) Placeholder(model apitype.Model) *AsyncImageWidget {
	s.placeholder.SetModel(model)
	s.hasPlaceholder = true
	return s
}

func (s *AsyncImageWidget) ErrorModel(model apitype.Model) *AsyncImageWidget {
	s.errorModel.SetModel(model)
	s.hasError = true
	return s
}

func (s *AsyncImageWidget) Fallback(model apitype.Model) *AsyncImageWidget {
	s.fallback.SetModel(model)
	s.hasFallback = true
	return s
}

func (s *AsyncImageWidget) BlurRadius(radius int) *AsyncImageWidget {
	s.blurRadius = radius
	return s
}

func (s *AsyncImageWidget) Alignment(alignment Alignment) *AsyncImageWidget {
	s.alignment = alignment
	return s
}

func (s *AsyncImageWidget) ContentScale(contentScale ContentScale) *AsyncImageWidget {
	s.contentScale = contentScale
	return s
}

func (s *AsyncImageWidget) Alpha(alpha float32) *AsyncImageWidget {
	s.alpha = alpha
	return s
}

func (s *AsyncImageWidget) ColorFilter(filter *color.NRGBA) *AsyncImageWidget {
	s.colorFilter = filter
	return s
}

func (s *AsyncImageWidget) ContentDescription(description string) *AsyncImageWidget {
	s.contentDescription = description
	return s
}

func (s *AsyncImageWidget) Size(width float32, height float32) *AsyncImageWidget {
	s.width = width
	s.height = height
	return s
}

func (s *AsyncImageWidget) State() *state.ImageState {
	return s.primary
}

func (s *AsyncImageWidget) pickState() (*state.ImageState, renderSource) {
	primaryReady := s.primary.Image() != nil
	primaryFailed := s.primary.Err() != nil

	source := selectSource(primaryReady, primaryFailed, s.hasPlaceholder, s.hasError, s.hasFallback)
	switch source {
	case renderPrimary:
		return s.primary, source
	case renderPlaceholder:
		return s.placeholder, source
	case renderError:
		return s.errorModel, source
	case renderFallback:
		return s.fallback, source
	}
	return nil, renderPending
}

func (s *AsyncImageWidget) Build() {
	maxWidth, maxHeight := giu.GetAvailableRegion()
	if s.width > 0 && s.height > 0 {
		maxWidth, maxHeight = s.width, s.height
	}

	sourceState, source := s.pickState()

	var sourceImage image.Image
	if sourceState != nil {
		sourceImage = sourceState.Image()
	}
	if sourceImage == nil {
		s.buildPending(maxWidth, maxHeight)
		return
	}

	processed := s.processImage(source, sourceState, sourceImage)
	texture := s.texture.textureFor(s.processedKey, processed)
	if texture == nil {
		s.buildPending(maxWidth, maxHeight)
		return
	}

	sourceSize := apitype.SizeFromRectangle(processed.Bounds())
	drawWidth, drawHeight := drawSize(s.contentScale, sourceSize, maxWidth, maxHeight)

	alignX, alignY := s.alignment.factors()
	offsetWidth := (maxWidth - drawWidth) * alignX
	offsetHeight := (maxHeight - drawHeight) * alignY

	imageWidget := giu.Image(texture).Size(drawWidth, drawHeight)

	if s.contentScale == ScaleCrop {
		// The child clips the covering image; the negative cursor offset
		// keeps the crop aligned.
		content := giu.Layout{
			giu.Custom(func() {
				giu.SetCursorPos(image.Pt(int(offsetWidth), int(offsetHeight)))
			}),
			imageWidget,
		}
		if s.contentDescription != "" {
			content = append(content, giu.Tooltip(s.contentDescription))
		}
		giu.Child().Border(false).Size(maxWidth, maxHeight).Layout(content...).Build()
		return
	}

	if offsetWidth < 0 {
		offsetWidth = 0
	}
	if offsetHeight < 0 {
		offsetHeight = 0
	}

	content := giu.Layout{
		giu.Column(
			giu.Dummy(1, offsetHeight),
			giu.Row(
				giu.Dummy(offsetWidth, 1),
				imageWidget,
			),
		),
	}
	if s.contentDescription != "" {
		content = append(content, giu.Tooltip(s.contentDescription))
	}
	content.Build()
}

// processImage applies blur (primary only) and tinting, cached per
// state generation and option set so each variant is computed once.
func (s *AsyncImageWidget) processImage(source renderSource, sourceState *state.ImageState, sourceImage image.Image) image.Image {
	key := fmt.Sprintf("%s:%d:r%d:a%.3f:f%v",
		source, sourceState.Generation(), s.blurRadius, s.alpha, s.colorFilter)
	if s.processedKey == key && s.processed != nil {
		return s.processed
	}

	processed := sourceImage
	if source == renderPrimary && s.blurRadius != 0 {
		if blurred, err := imagetools.Blur(processed, s.blurRadius); err != nil {
			logger.Error.Printf("Not blurring: %s", err)
		} else {
			processed = blurred
		}
	}
	processed = imagetools.ApplyTint(processed, s.colorFilter, s.alpha)

	s.processed = processed
	s.processedKey = key
	return processed
}

func (s *AsyncImageWidget) buildPending(maxWidth float32, maxHeight float32) {
	label := giu.Label("Loading...")
	labelWidth, labelHeight := giu.CalcTextSize("Loading...")

	giu.Column(
		giu.Dummy(1, (maxHeight-labelHeight)/2),
		giu.Row(
			giu.Dummy((maxWidth-labelWidth)/2, 1),
			label,
		),
	).Build()
}

func drawSize(contentScale ContentScale, source apitype.Size, maxWidth float32, maxHeight float32) (float32, float32) {
	target := apitype.SizeOf(int(maxWidth), int(maxHeight))
	switch contentScale {
	case ScaleStretch:
		return maxWidth, maxHeight
	case ScaleNone:
		return float32(source.Width()), float32(source.Height())
	case ScaleCrop:
		scaled := source.FillTo(target)
		return float32(scaled.Width()), float32(scaled.Height())
	}
	scaled := source.FitTo(target)
	return float32(scaled.Width()), float32(scaled.Height())
}
