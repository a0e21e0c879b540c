// Package servicename parses the structured names used to address services
// through a naming lookup, such as "osgi:service/com.foo.Bar/(vendor=Acme)".
//
// # Grammar
//
//	name           := scheme-part [ '/' interface [ '/' filter | ( '/' path-component )+ ] ]
//	scheme-part    := [ scheme ':' ] scheme-path
//	scheme         := /[^:\/]+/
//	interface      := /[^\/]*/
//	filter         := '(' /.*/
//	path-component := /[^\/]*/
//
// The name is split on '/' into components with a fixed positional meaning:
//
//	component 0: scheme and scheme path, e.g. "osgi:service", "aries:services", "osgi:servicelist"
//	component 1: interface
//	component 2: filter, only when the name has exactly three components
//
// A name with more than three components is service name based: everything
// after component 0 is the service name.
//
// # Parentheses
//
// A filter may contain '/'. Splitting stops for good at the first '(' or ')'
// character, so "a/(b/c)/d" yields the two components "a" and "(b/c)/d". The
// counter behind this never decrements and consumers rely on that exact
// outcome.
package servicename
