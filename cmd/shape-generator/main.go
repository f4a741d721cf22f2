// Package main provides the CLI entrypoint for shape-generator.
//
// shape-generator is a Go codegen tool that:
//   - Parses Go packages (AST + go/types) to find aggregates and their arity
//   - Resolves how every type is shaped through prioritised concepts
//   - Generates positional field projections backed by the tuple package
//
// Usage:
//
//	shape-generator [flags] <command> [command flags] [packages]
//
// Commands: analyze | gen | check | tuples | schema | watch
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
