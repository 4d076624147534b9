package event

type Topic string

const (
	ImageLoaded  Topic = "event-image-loaded"
	ImageFailed  Topic = "event-image-failed"
	StateChanged Topic = "event-state-changed"
)

type Sender interface {
	SendToTopic(topic Topic)
	SendToTopicWithData(topic Topic, data ...interface{})
}
