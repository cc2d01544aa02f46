/*
Package codec converts payloads to and from bytes at the edges of the action store.

Soft failure is the rule here: Decode reports a failed decode as absence instead of an error, so that
observers can drop payloads they do not understand, as the presentation router does with malformed envelopes.

# Payload forms

Decode accepts a payload in any of the shapes the store carries:

  - a value that already is a T (in-process dispatch, no serialization at all);
  - a []byte produced by a Codec;
  - a map[string]any, decoded field by field with mapstructure using the json tags.
*/
package codec
