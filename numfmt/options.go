package numfmt

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-cellfmt/locale"
)

// Option configures [Compile] and [Format.Render].  Options given to Render
// override those given to Compile for that call.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	resources locale.Resources
	locale    language.Tag
}

func newConfig(opts []Option) config {
	c := config{
		logger:    slog.Default(),
		resources: locale.Default(),
		locale:    language.AmericanEnglish,
	}
	return c.with(opts)
}

func (c config) with(opts []Option) config {
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithLogger sets the logger that receives compile-time diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithResources sets the provider of month, weekday, AM/PM and era names.
func WithResources(r locale.Resources) Option {
	return func(c *config) {
		if r != nil {
			c.resources = r
		}
	}
}

// WithLocale sets the runtime locale.  Sections without a locale clause name
// months and weekdays in it, and it enables the [DBNum] numeral systems.
func WithLocale(tag language.Tag) Option {
	return func(c *config) { c.locale = tag }
}
