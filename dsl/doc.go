// Package dsl provides the declaration surface for gomold schemas.
//
// Overview
//   - Builder API: declare per-field wire semantics with Struct()/Field()
//     and refine each field with Key/Lossless/Lossy/Optional/Default/
//     EncodeNull/Modify/Debug.
//   - Primitives: String()/Bool()/Int()..Int64()/Uint()..Uint64()/
//     Float32()/Float64() mold scalar wire values.
//   - Composites: SliceOf(elem), MapOf(elem) and Nested[T]() for arrays,
//     uniform objects and registered struct types.
//   - Transformers: Transformed(wire, tr) layers a custom wire shape over
//     any type; Time(tr) and UnixTime() cover timestamps with the
//     transformers from the codec package.
//   - Binding: Bind[T]/MustBind match declarations against T's fields by
//     resolved key and install the schema in the process-wide registry.
//
// Entry points
//   - Struct(): create a builder; chain Field(...) declarations and hand
//     the chain to Bind[T]/MustBind.
//   - Bind[T](b): returns (*gomold.Schema[T], error); MustBind panics.
//
// Example
//
//	type Product struct {
//		SKU   string   `json:"sku"`
//		Price float64  `json:"price"`
//		Tags  []string `json:"tags"`
//	}
//
//	var productSchema = dsl.MustBind[Product](dsl.Struct().
//		Field("sku", dsl.String()).
//		Field("price", dsl.Float64()).Lossless().
//		Field("tags", dsl.SliceOf(dsl.String())).Lossy())
//
//	p, err := productSchema.Unmarshal(ctx, data)
package dsl
