// Package rewrite implements an incremental placeholder rewriter over byte
// streams. An Engine consumes chunks of arbitrary size, scans them for
// delimited placeholders (default "{{ name }}"), and substitutes each one
// with a value obtained from a Resolver, forwarding every other byte
// unchanged. Only bytes that could still belong to an open placeholder are
// buffered, so memory stays bounded regardless of input size, and output is
// byte-identical no matter how the input was chunked.
package rewrite
