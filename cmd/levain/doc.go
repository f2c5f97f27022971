// Package main hosts the levain CLI entrypoint and command graph.
//
// The Cobra command tree exposes the recipe store and the optimizer both as
// one-shot subcommands (list, show, create, optimize) and as the lettered
// interactive menu that runs when levain is started on a terminal without
// arguments. Configuration, logging, and store handles are resolved once per
// invocation by commandContext.
//
// Keep the domain rules in the internal packages; commands here only parse
// input and render results.
package main
