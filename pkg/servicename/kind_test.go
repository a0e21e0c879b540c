package servicename_test

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/svcname/pkg/servicename"
)

func TestName_Kind(t *testing.T) {
	testcases := []struct {
		input string
		want  servicename.Kind
		str   string
	}{
		{input: "osgi:service", want: servicename.KindSchemeOnly, str: "scheme-only"},
		{input: "osgi:service/com.foo.Bar", want: servicename.KindInterface, str: "interface"},
		{input: "osgi:service/com.foo.Bar/(vendor=Acme)", want: servicename.KindFiltered, str: "filtered"},
		{input: "osgi:servicelist/com.foo.Bar/a/b", want: servicename.KindServiceName, str: "service-name"},
		{input: "a/(b/c)/d", want: servicename.KindInterface, str: "interface"},
	}
	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			got := servicename.Parse(tc.input).Kind()
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.str, got.String())
		})
	}
	assert.Equal(t, "Kind(42)", servicename.Kind(42).String())
}

func TestName_Query(t *testing.T) {
	testcases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "osgi:service/com.foo.Bar", want: "(objectClass=com.foo.Bar)"},
		{input: "osgi:service/com.foo.Bar/(vendor=Acme)", want: "(&(objectClass=com.foo.Bar)(vendor=Acme))"},
		{input: "osgi:servicelist/com.foo.Bar/a/b", want: "(objectClass=com.foo.Bar)"},
		{input: "a/(b/c)/d", want: `(objectClass=\28b/c\29/d)`},
		{input: `osgi:service/com.foo.*\x`, want: `(objectClass=com.foo.\2a\5cx)`},
		{input: "osgi:service/", want: "(objectClass=)"},
		{input: "osgi:service", wantErr: true},
	}
	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := servicename.Parse(tc.input).Query()
			if tc.wantErr {
				assert.ErrorIs(t, err, servicename.ErrIndexOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestName_Describe(t *testing.T) {
	got := servicename.Parse("osgi:service/com.foo.Bar/(vendor=Acme)").Describe()
	want := servicename.Description{
		Raw:         "osgi:service/com.foo.Bar/(vendor=Acme)",
		Components:  []string{"osgi:service", "com.foo.Bar", "(vendor=Acme)"},
		Kind:        "filtered",
		Scheme:      lo.ToPtr("osgi"),
		SchemePath:  lo.ToPtr("service"),
		Registered:  true,
		Interface:   lo.ToPtr("com.foo.Bar"),
		Filter:      lo.ToPtr("(vendor=Acme)"),
		ServiceName: lo.ToPtr("com.foo.Bar/(vendor=Acme)"),
		Query:       lo.ToPtr("(&(objectClass=com.foo.Bar)(vendor=Acme))"),
	}
	assert.Equal(t, want, got)

	bare := servicename.Parse("noscheme").Describe()
	assert.Equal(t, servicename.Description{
		Raw:        "noscheme",
		Components: []string{"noscheme"},
		Kind:       "scheme-only",
	}, bare)
}

func TestName_DescribeEmptyParts(t *testing.T) {
	got := servicename.Parse("osgi:service/").Describe()
	assert.Equal(t, "interface", got.Kind)
	require.NotNil(t, got.Interface)
	assert.Equal(t, "", *got.Interface)
	require.NotNil(t, got.ServiceName)
	assert.Equal(t, "", *got.ServiceName)
	assert.Nil(t, got.Filter)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"raw": "osgi:service/",
		"components": ["osgi:service", ""],
		"kind": "interface",
		"scheme": "osgi",
		"scheme_path": "service",
		"registered": true,
		"interface": "",
		"service_name": "",
		"query": "(objectClass=)"
	}`, string(out))

	bare, err := json.Marshal(servicename.Parse("noscheme").Describe())
	require.NoError(t, err)
	assert.JSONEq(t, `{"raw":"noscheme","components":["noscheme"],"kind":"scheme-only","registered":false}`, string(bare))
}
