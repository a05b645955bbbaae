package dockername

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/k1LoW/git-imgname/internal/branch"
)

// Logger receives tracing output from a Mapper. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Mapper maps a branch name and type to an image name.
// A Mapper is safe for concurrent use.
type Mapper struct {
	logger   Logger
	composed bool
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger used for tracing. A nil logger disables tracing.
func WithLogger(l Logger) Option {
	return func(m *Mapper) {
		if l == nil {
			l = nopLogger{}
		}
		m.logger = l
	}
}

// WithComposedInput composes the branch name to Unicode NFC before mapping,
// so that a decomposed "a" + U+0308 is transliterated like "ä".
func WithComposedInput() Option {
	return func(m *Mapper) {
		m.composed = true
	}
}

// NewMapper returns a Mapper configured with opts.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{logger: nopLogger{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Map returns the image name for branchName when t is branch.Other.
// For every other type it returns "", leaving the naming to the caller.
func (m *Mapper) Map(branchName string, t branch.Type) string {
	m.logger.Debug("map", "branchName", branchName, "branchType", t.String())
	switch t {
	case branch.Other:
		name := strings.TrimSpace(branchName)
		if m.composed {
			name = norm.NFC.String(name)
		}
		ret := ImageName(name)
		m.logger.Debug("mapped", "ret", ret)
		return ret
	default:
		return ""
	}
}

var defaultMapper = NewMapper()

// Map maps branchName with a Mapper that has no options set.
func Map(branchName string, t branch.Type) string {
	return defaultMapper.Map(branchName, t)
}
