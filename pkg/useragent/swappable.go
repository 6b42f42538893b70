package useragent

import (
	"sync/atomic"

	"github.com/dmitrymomot/uaparser/pkg/uaparser"
)

// Swappable holds the Classifier currently in service and lets a reload
// replace it without blocking readers. In-flight calls finish on the
// Classifier they started with.
type Swappable struct {
	current atomic.Pointer[Classifier]
}

// NewSwappable returns a Swappable serving c.
func NewSwappable(c *Classifier) *Swappable {
	s := &Swappable{}
	s.current.Store(c)
	return s
}

// Load returns the Classifier in service.
func (s *Swappable) Load() *Classifier { return s.current.Load() }

// Swap puts c in service and returns the previous Classifier.
func (s *Swappable) Swap(c *Classifier) *Classifier { return s.current.Swap(c) }

// Parse classifies ua with the Classifier in service.
func (s *Swappable) Parse(ua string) (UserAgent, error) { return s.Load().Parse(ua) }

// Rules returns the effective tables of the Classifier in service.
func (s *Swappable) Rules() uaparser.RuleSet { return s.Load().Rules() }
