// Package token defines the lexical token entity used by the phpfix
// toolchain.
// Invariants:
//   - A non-kinded (bare) token never carries a kind id or a line number.
//   - Prototype is a lossless inverse of New: wrapping a prototype and
//     re-emitting it yields an equal prototype.
//   - Clear is one-way: a cleared token is indistinguishable from a bare
//     empty-string token, and nothing restores its original kind.
//   - Kind ids are opaque integers assigned by the active Registry; the
//     package never interprets them beyond set membership.
//   - Classification tables are built once per configured registry and
//     are read-only afterwards.
package token
