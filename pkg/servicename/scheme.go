package servicename

import (
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"
)

// Well-known schemes.
const (
	OSGiScheme  = "osgi"
	AriesScheme = "aries"
)

// Well-known scheme paths.
const (
	ServicePath     = "service"
	ServicesPath    = "services"
	ServiceListPath = "servicelist"
	FrameworkPath   = "framework"
)

var schemes = xsync.NewMapOf[string, struct{}]()

func init() {
	RegisterScheme(OSGiScheme)
	RegisterScheme(AriesScheme)
}

// RegisterScheme registers a scheme. It panics if the scheme is already
// registered.
func RegisterScheme(scheme string) {
	if _, loaded := schemes.LoadOrStore(scheme, struct{}{}); loaded {
		panic("scheme already registered: " + scheme)
	}
}

// IsRegisteredScheme returns true if the scheme is registered.
func IsRegisteredScheme(scheme string) bool {
	_, ok := schemes.Load(scheme)
	return ok
}

// AllRegisteredSchemes returns all registered schemes in sorted order.
func AllRegisteredSchemes() []string {
	all := map[string]struct{}{}
	schemes.Range(func(scheme string, _ struct{}) bool {
		all[scheme] = struct{}{}
		return true
	})
	keys := lo.Keys(all)
	slices.Sort(keys)
	return keys
}

// IsRegisteredScheme reports whether the name carries a registered scheme.
func (n Name) IsRegisteredScheme() bool {
	scheme, ok := n.Scheme()
	return ok && IsRegisteredScheme(scheme)
}
