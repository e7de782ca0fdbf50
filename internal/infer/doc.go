// Package infer fills mapping destinations that source data cannot supply.
//
// A Gateway builds one request per record: a plain-text summary of the
// record plus a field-specific instruction for every requested field, sent
// to a Provider that answers with a JSON object. When no provider is
// configured, or the call or its decoding fails, every field resolves from
// the static fallback table; fields missing from an otherwise good answer
// are backfilled one by one. Inference never fails a record.
//
// Providers:
//   - openai: chat completions over HTTP
//   - gemini: Google Gemini through the genai SDK
//   - none: fallback values only
package infer
