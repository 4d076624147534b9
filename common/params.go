package common

import (
	"flag"
)

type Params struct {
	logLevel     string
	windowWidth  int
	windowHeight int
	blurRadius   int
	placeholder  string
	fallback     string
	sources      []string
}

func NewEmptyParams() *Params {
	return &Params{
		logLevel:     "",
		windowWidth:  0,
		windowHeight: 0,
		blurRadius:   0,
		placeholder:  "",
		fallback:     "",
		sources:      []string{},
	}
}

func ParseParams() *Params {
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	windowWidth := flag.Int("windowWidth", 800, "Initial window width")
	windowHeight := flag.Int("windowHeight", 600, "Initial window height")
	blurRadius := flag.Int("blurRadius", 0, "Initial blur radius, 0-25")
	placeholder := flag.String("placeholder", "", "Path to a placeholder image shown while loading")
	fallback := flag.String("fallback", "", "Path to a fallback image shown when loading fails")

	flag.Parse()
	sources := flag.Args()

	return &Params{
		logLevel:     *logLevel,
		windowWidth:  *windowWidth,
		windowHeight: *windowHeight,
		blurRadius:   *blurRadius,
		placeholder:  *placeholder,
		fallback:     *fallback,
		sources:      sources,
	}
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) WindowWidth() int {
	return s.windowWidth
}

func (s *Params) WindowHeight() int {
	return s.windowHeight
}

func (s *Params) BlurRadius() int {
	return s.blurRadius
}

func (s *Params) Placeholder() string {
	return s.placeholder
}

func (s *Params) Fallback() string {
	return s.fallback
}

func (s *Params) Sources() []string {
	return s.sources
}
