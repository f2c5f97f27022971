// Package recipe owns the recipe data model and the flat JSON recipe store.
//
// Recipes are stored in normalized form: every ingredient amount is divided by
// the recipe's base serving count when the recipe is created, so the store
// only ever holds per-serving ratios. Quantities keep insertion order so the
// file, the menu letters, and every printed table list ingredients the way the
// user entered them.
//
// The Store is a handle around a single file. Every command reloads it; an
// absent or corrupt file reads as an empty recipe book rather than an error.
package recipe
