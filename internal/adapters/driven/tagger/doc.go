// Package tagger holds the HTTP plumbing shared by the part-of-speech
// tagger adapters: a JSON client and a token-bucket rate limiter.
//
// Provider adapters live in subpackages (spacy, stanza) and map their
// native responses onto domain.TaggedToken.
package tagger
