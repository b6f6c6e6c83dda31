// Package prompt maps rewrite requests to the instruction strings sent to
// the language model. Each recognized content category carries a fixed
// formatting contract (paragraph shape, bullet counts, length limits), and
// the mapping is deterministic so identical requests always produce
// byte-identical instructions.
package prompt
