// Package dialect models the lexical-kind registries of the PHP
// versions phpfix understands. Every named kind has a stable id that
// never changes between versions; what varies per version is whether
// the kind is defined at all. Registry(v) exposes exactly the kinds
// version v defines, which is what makes the token package's keyword
// and classy tables version-correct.
package dialect
