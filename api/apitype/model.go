package apitype

import (
	"io"
	"net/url"

	"github.com/google/uuid"
)

type ModelKind int

const (
	KindNone ModelKind = iota
	KindURL
	KindURLValue
	KindFile
	KindResource
	KindReader
)

func (s ModelKind) String() string {
	switch s {
	case KindURL:
		return "url"
	case KindURLValue:
		return "url-value"
	case KindFile:
		return "file"
	case KindResource:
		return "resource"
	case KindReader:
		return "reader"
	}
	return "none"
}

type ModelId string

const NoModel = ModelId("")

// ResourceId identifies an image registered in a resource.Registry.
type ResourceId string

// Model describes where an image comes from. It is a closed union with
// one constructor per supported source kind; the zero Model is invalid
// and loading it is reported as an error, never silently dropped.
type Model struct {
	id       ModelId
	kind     ModelKind
	url      string
	urlValue *url.URL
	path     string
	resource ResourceId
	reader   io.Reader
}

var EmptyModel = Model{id: NoModel, kind: KindNone}

func newModel(kind ModelKind) Model {
	return Model{
		id:   ModelId(uuid.New().String()),
		kind: kind,
	}
}

func ModelFromURL(rawUrl string) Model {
	model := newModel(KindURL)
	model.url = rawUrl
	return model
}

func ModelFromURLValue(value *url.URL) Model {
	model := newModel(KindURLValue)
	model.urlValue = value
	return model
}

func ModelFromFile(path string) Model {
	model := newModel(KindFile)
	model.path = path
	return model
}

func ModelFromResource(resourceId ResourceId) Model {
	model := newModel(KindResource)
	model.resource = resourceId
	return model
}

func ModelFromReader(reader io.Reader) Model {
	model := newModel(KindReader)
	model.reader = reader
	return model
}

func (s Model) Id() ModelId {
	return s.id
}

func (s Model) Kind() ModelKind {
	return s.kind
}

func (s Model) IsValid() bool {
	return s.kind != KindNone && s.id != NoModel
}

func (s Model) Url() string {
	return s.url
}

func (s Model) UrlValue() *url.URL {
	return s.urlValue
}

func (s Model) Path() string {
	return s.path
}

func (s Model) Resource() ResourceId {
	return s.resource
}

func (s Model) Reader() io.Reader {
	return s.reader
}

// Key is the identity used to decide whether a model change must start
// a new load. Two models built from the same URL, file or resource share
// a key; reader models are identified by instance since a stream can
// only be consumed once.
func (s Model) Key() string {
	switch s.kind {
	case KindURL:
		return "url:" + s.url
	case KindURLValue:
		if s.urlValue != nil {
			return "url:" + s.urlValue.String()
		}
		return "url:"
	case KindFile:
		return "file:" + s.path
	case KindResource:
		return "resource:" + string(s.resource)
	case KindReader:
		return "reader:" + string(s.id)
	}
	return ""
}

func (s Model) String() string {
	if !s.IsValid() {
		return "Model<invalid>"
	}
	return "Model{" + s.Key() + "}"
}
