package wkb

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/oy3o/wkb/geom"
)

// MaxDepth is the default ceiling on nested collections. The outermost
// geometry is at depth 1.
const MaxDepth = 200

// options defines the configuration for a decode call.
type options struct {
	checks   Check
	maxDepth int
	tracker  *geom.Tracker
	log      logrus.FieldLogger
}

var discardLogger = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func defaultOptions() options {
	return options{
		checks:   CheckAll,
		maxDepth: MaxDepth,
		log:      discardLogger,
	}
}

// Option configures a Decoder.
type Option func(*options)

// WithChecks selects the validity checks. The default is CheckAll.
func WithChecks(c Check) Option {
	return func(o *options) { o.checks = c }
}

// WithMaxDepth overrides the nested collection ceiling. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}

// WithTracker reports every allocated node and coordinate sequence to t.
func WithTracker(t *geom.Tracker) Option {
	return func(o *options) { o.tracker = t }
}

// WithLogger sets the logger that receives decode failures at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
