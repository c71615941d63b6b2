// Package passes implements the rewriting passes that run over the
// shader instruction graph between translation and code generation.
//
// The central pass is resource tracking: it discovers every buffer,
// image and sampler descriptor a program references, assigns each a
// stable binding index deduplicated per shader, and rewrites the
// accessing instructions to carry that index plus a computed address
// or reshaped coordinate vector instead of a raw descriptor handle.
//
// Passes take all state (the program graph and its Info) as explicit
// parameters and run strictly sequentially within one compilation.
// Unsupported descriptor patterns and invariant violations abort the
// compilation with an error rather than leaving bindings partially
// recovered.
package passes
