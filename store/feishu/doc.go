// Package feishu implements store.EntryRepository against the Feishu
// (Lark) Bitable open API. It manages tenant access tokens, paged record
// listing, and the field-type coercion Bitable needs.
package feishu
