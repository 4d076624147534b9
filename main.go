package main

import (
	"strings"

	"github.com/AllenDang/giu"

	"vincit.fi/async-image/api/apitype"
	"vincit.fi/async-image/common"
	"vincit.fi/async-image/common/logger"
	"vincit.fi/async-image/event"
	"vincit.fi/async-image/loader"
	"vincit.fi/async-image/resource"
	"vincit.fi/async-image/widget"
)

const eventBusQueueSize = 100

func modelFromSource(source string) apitype.Model {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return apitype.ModelFromURL(source)
	}
	return apitype.ModelFromFile(source)
}

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	broker := event.InitBus(eventBusQueueSize)
	imageLoader := loader.NewImageLoader(resource.DefaultRegistry())
	defer imageLoader.Close()

	view := widget.AsyncImage(imageLoader, broker)
	if params.Placeholder() != "" {
		view.Placeholder(apitype.ModelFromFile(params.Placeholder()))
	}
	if params.Fallback() != "" {
		view.Fallback(apitype.ModelFromFile(params.Fallback()))
	}
	view.BlurRadius(params.BlurRadius())

	sources := params.Sources()
	models := make([]apitype.Model, 0, len(sources))
	for _, source := range sources {
		models = append(models, modelFromSource(source))
	}

	status := ""
	strip := widget.ThumbnailStrip(imageLoader).
		OnSelect(func(index int, model apitype.Model) {
			view.SetModel(model)
		}).
		SetModels(models)
	if len(models) > 0 {
		view.SetModel(models[0])
		status = sources[0]
	}

	broker.ConnectToGui(event.ImageLoaded, func(model apitype.Model) {
		status = model.String()
	})
	broker.ConnectToGui(event.ImageFailed, func(model apitype.Model, err error) {
		status = "Failed: " + model.String()
	})

	blurRadius := int32(params.BlurRadius())

	win := giu.NewMasterWindow("Async Image", params.WindowWidth(), params.WindowHeight(), 0)
	win.Run(func() {
		nextButton := giu.Button("Next").OnClick(func() {
			if strip.Count() == 0 {
				return
			}
			strip.Select((strip.Selected() + 1) % strip.Count())
		}).Size(120, 30)

		blurSlider := giu.SliderInt("Blur", &blurRadius, 0, 25).OnChange(func() {
			view.BlurRadius(int(blurRadius))
		})

		giu.SingleWindow().
			Layout(
				giu.Row(
					nextButton,
					blurSlider,
					giu.Dummy(-300, 30),
					giu.Label(status),
				),
				giu.Separator(),
				strip,
				giu.Separator(),
				view,
			)
	})
}
