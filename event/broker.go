package event

import (
	"reflect"

	"github.com/AllenDang/giu"
	messagebus "github.com/vardius/message-bus"

	"vincit.fi/async-image/common/logger"
)

// requestFrame asks the GUI to render a new frame after a subscriber has
// run. Package variable so tests can run without a master window.
var requestFrame = giu.Update

type Broker struct {
	bus messagebus.MessageBus

	Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

func (s *Broker) Subscribe(topic Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}
}

// ConnectToGui subscribes a callback that runs the GUI dispatch after
// each delivery. In immediate mode there is no idle queue to marshal
// onto; the callback mutates state behind its own lock and the frame
// request makes the widget pick the change up on the next Build.
func (s *Broker) ConnectToGui(topic Topic, callback interface{}) {
	cb := func(params ...interface{}) {
		args := make([]reflect.Value, 0, len(params))
		for _, param := range params {
			args = append(args, reflect.ValueOf(param))
		}
		if logger.IsLogLevel(logger.TRACE) {
			logger.Trace.Printf("Calling topic '%s' with %d arguments", topic, len(args))
		}
		reflect.ValueOf(callback).Call(args)
		requestFrame()
	}
	err := s.bus.Subscribe(string(topic), cb)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}
}

func (s *Broker) SendToTopic(topic Topic) {
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Sending to '%s'", topic)
	}
	s.bus.Publish(string(topic))
}

func (s *Broker) SendToTopicWithData(topic Topic, data ...interface{}) {
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Sending to '%s' with %d arguments", topic, len(data))
	}
	s.bus.Publish(string(topic), data...)
}

func (s *Broker) Close() {
	s.bus.Close(string(ImageLoaded))
	s.bus.Close(string(ImageFailed))
	s.bus.Close(string(StateChanged))
}
