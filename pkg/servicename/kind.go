package servicename

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/wuxler/svcname/pkg/errdefs"
)

// Kind classifies a name by its component count, which decides the kind of
// lookup a resolver performs.
type Kind int

const (
	// KindSchemeOnly is a name with only the scheme component.
	KindSchemeOnly Kind = iota
	// KindInterface addresses a service by interface.
	KindInterface
	// KindFiltered addresses a service by interface and filter.
	KindFiltered
	// KindServiceName addresses a service by its hierarchical service name.
	KindServiceName
)

var kindNames = map[Kind]string{
	KindSchemeOnly:  "scheme-only",
	KindInterface:   "interface",
	KindFiltered:    "filtered",
	KindServiceName: "service-name",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kind returns the lookup kind of the name.
func (n Name) Kind() Kind {
	switch size := n.Len(); {
	case size > filterSize:
		return KindServiceName
	case size == filterSize:
		return KindFiltered
	case size > positionInterface:
		return KindInterface
	default:
		return KindSchemeOnly
	}
}

// ObjectClassKey is the registry property holding the interfaces a service
// is published under.
const ObjectClassKey = "objectClass"

// valueEscaper escapes the characters RFC 4515 reserves in a filter
// assertion value.
var valueEscaper = strings.NewReplacer(
	`\`, `\5c`,
	"(", `\28`,
	")", `\29`,
	"*", `\2a`,
	"\x00", `\00`,
)

// Query builds the registry filter selecting services of the interface and,
// when present, matching the filter component. The interface is escaped as
// an assertion value, the filter is embedded as is.
func (n Name) Query() (string, error) {
	iface, err := n.Interface()
	if err != nil {
		return "", errdefs.Newf(err, "unable to build query")
	}
	query := fmt.Sprintf("(%s=%s)", ObjectClassKey, valueEscaper.Replace(iface))
	if filter, ok := n.Filter(); ok {
		query = fmt.Sprintf("(&%s%s)", query, filter)
	}
	return query, nil
}

// Description is a flattened view of a Name for rendering. Optional parts
// are nil when the name does not have them and point to "" when the name
// has them empty.
type Description struct {
	Raw         string   `json:"raw" yaml:"raw"`
	Components  []string `json:"components" yaml:"components"`
	Kind        string   `json:"kind" yaml:"kind"`
	Scheme      *string  `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	SchemePath  *string  `json:"scheme_path,omitempty" yaml:"scheme_path,omitempty"`
	Registered  bool     `json:"registered" yaml:"registered"`
	Interface   *string  `json:"interface,omitempty" yaml:"interface,omitempty"`
	Filter      *string  `json:"filter,omitempty" yaml:"filter,omitempty"`
	ServiceName *string  `json:"service_name,omitempty" yaml:"service_name,omitempty"`
	Query       *string  `json:"query,omitempty" yaml:"query,omitempty"`
}

// Describe returns the Description of the name.
func (n Name) Describe() Description {
	d := Description{
		Raw:        n.String(),
		Components: n.Components(),
		Kind:       n.Kind().String(),
		Registered: n.IsRegisteredScheme(),
	}
	if scheme, ok := n.Scheme(); ok {
		d.Scheme = lo.ToPtr(scheme)
	}
	if schemePath, ok := n.SchemePath(); ok {
		d.SchemePath = lo.ToPtr(schemePath)
	}
	if filter, ok := n.Filter(); ok {
		d.Filter = lo.ToPtr(filter)
	}
	if iface, err := n.Interface(); err == nil {
		d.Interface = lo.ToPtr(iface)
	}
	if serviceName, err := n.ServiceName(); err == nil {
		d.ServiceName = lo.ToPtr(serviceName)
	}
	if query, err := n.Query(); err == nil {
		d.Query = lo.ToPtr(query)
	}
	return d
}
