package gomold

// Package gomold molds loosely-typed JSON trees into Go values and back
// using declared schemas:
//
// - Per-field key mapping, including dotted paths into nested objects
// - Coercion between wire and Go representations in strict, lossless and
//   lossy modes
// - Bidirectional transformers for types with a custom wire shape
// - Defaults, optional fields and override/validate modifier chains
// - A chained error model that records type, property and cause per level
//
// Design policy:
// - Keep only public APIs in the root package; put coercion and struct
//   metadata under internal/.
// - Place the schema DSL under dsl/, time transformers under codec/,
//   modifier presets under mod/, extra drivers under source/ and the CLI
//   under cmd/gomold.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := dsl.MustBind[Product](dsl.Struct().
//		Field("sku", dsl.String()).
//		Field("price", dsl.Float64()).Lossless())
//
//	p, err := gomold.Unmarshal[Product](ctx, data)
//	out, err := gomold.Marshal(ctx, p)
