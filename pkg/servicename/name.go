package servicename

import (
	"encoding"
	"slices"
	"strings"

	"github.com/wuxler/svcname/pkg/errdefs"
)

//go:generate mockgen -destination=./textmarshaler_mock_test.go -package=servicename_test encoding TextMarshaler

const (
	positionScheme    = 0
	positionInterface = 1
	positionFilter    = 2

	filterSize = positionFilter + 1
)

// Name is a structured service name split into ordered components. A Name
// is immutable and safe for concurrent use. The zero value is equivalent to
// Parse("").
type Name struct {
	components []string
}

var (
	_ encoding.TextMarshaler   = Name{}
	_ encoding.TextUnmarshaler = (*Name)(nil)
)

// Parse splits raw into a Name. It never fails and always yields at least
// one component.
func Parse(raw string) Name {
	return Name{components: split(raw)}
}

// FromName renders other to text and parses the result. It returns
// ErrInvalidFormat when other is nil or cannot be rendered.
func FromName(other encoding.TextMarshaler) (Name, error) {
	var zero Name
	if other == nil {
		return zero, errdefs.Newf(ErrInvalidFormat, "nil name")
	}
	text, err := other.MarshalText()
	if err != nil {
		return zero, errdefs.NewE(ErrInvalidFormat, err)
	}
	return Parse(string(text)), nil
}

func (n Name) parts() []string {
	if len(n.components) == 0 {
		return []string{""}
	}
	return n.components
}

// Len returns the number of components, which is always at least one.
func (n Name) Len() int {
	return len(n.parts())
}

// Get returns the component at position i.
func (n Name) Get(i int) (string, error) {
	parts := n.parts()
	if i < 0 || i >= len(parts) {
		return "", errdefs.Newf(ErrIndexOutOfRange, "component %d requested from name %q with %d component(s)", i, n, len(parts))
	}
	return parts[i], nil
}

// Components returns a copy of all components in order.
func (n Name) Components() []string {
	return slices.Clone(n.parts())
}

// Equal reports whether both names have the same components.
func (n Name) Equal(other Name) bool {
	return slices.Equal(n.parts(), other.parts())
}

// String joins the components with Separator, which reproduces the string
// the name was parsed from.
func (n Name) String() string {
	return strings.Join(n.parts(), string(Separator))
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	*n = Parse(string(text))
	return nil
}

// HasFilter reports whether the name has exactly three components, the last
// one being a filter.
func (n Name) HasFilter() bool {
	return n.Len() == filterSize
}

// IsServiceNameBased reports whether the name has more than three
// components and so addresses a service by its hierarchical service name.
func (n Name) IsServiceNameBased() bool {
	return n.Len() > filterSize
}

// Scheme returns the part of component 0 before the first ':'. The scheme is
// absent when there is no ':' or when it is the first character.
func (n Name) Scheme() (string, bool) {
	part0 := n.parts()[positionScheme]
	if i := strings.IndexByte(part0, SchemeSeparator); i > 0 {
		return part0[:i], true
	}
	return "", false
}

// SchemePath returns the part of component 0 after the first ':', under the
// same condition as Scheme.
func (n Name) SchemePath() (string, bool) {
	part0 := n.parts()[positionScheme]
	if i := strings.IndexByte(part0, SchemeSeparator); i > 0 {
		return part0[i+1:], true
	}
	return "", false
}

// Interface returns component 1.
func (n Name) Interface() (string, error) {
	return n.Get(positionInterface)
}

// Filter returns component 2 when the name has a filter.
func (n Name) Filter() (string, bool) {
	if !n.HasFilter() {
		return "", false
	}
	return n.parts()[positionFilter], true
}

// ServiceName joins every component after component 0 with Separator.
func (n Name) ServiceName() (string, error) {
	parts := n.parts()
	if len(parts) <= positionInterface {
		return "", errdefs.Newf(ErrIndexOutOfRange, "no service name after the scheme in %q", n)
	}
	return strings.Join(parts[positionInterface:], string(Separator)), nil
}
