// Package pkg provides the libraries behind the asciiflag command.
//
// # Overview
//
// asciiflag draws the Japanese flag as a block of text. The pkg directory is
// organized into:
//
//  1. [flag] - The renderer (validation, geometry, grid, mirroring)
//  2. [config] - TOML configuration (default sizes and characters)
//  3. [errors] - Coded errors shared by the renderer and the CLI
//  4. [observability] - Optional render hooks for metrics and tracing
//  5. [buildinfo] - Version information injected at build time
//
// # Data Flow
//
//	size n (+ characters)
//	         ↓
//	    [flag.Validate] (even, non-negative)
//	         ↓
//	    [flag.ComputeDimensions]
//	         ↓
//	    [flag.BuildHalf] → [flag.Mirror]
//	         ↓
//	    text, one newline-terminated row per line
//
// # Quick Start
//
//	import "github.com/matzehuels/asciiflag/pkg/flag"
//
//	out, err := flag.Render(6, flag.DefaultCharacters())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(out)
//
// Custom characters:
//
//	chars, err := flag.ParseCharacters("=.o@")
//	out, err := flag.Render(6, chars)
//
// # Errors
//
// Every error returned by these packages that stems from bad input is an
// [errors.Error] with a code; the CLI prints [errors.UserMessage] and exits
// with status 1.
//
// [flag]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/flag
// [config]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/buildinfo
// [flag.Validate]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/flag#Validate
// [flag.ComputeDimensions]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/flag#ComputeDimensions
// [flag.BuildHalf]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/flag#BuildHalf
// [flag.Mirror]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/flag#Mirror
// [errors.Error]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/errors#Error
// [errors.UserMessage]: https://pkg.go.dev/github.com/matzehuels/asciiflag/pkg/errors#UserMessage
package pkg
