// Package flag renders an ASCII-art Japanese flag.
//
// A flag of size n is a (3n+2) x (2n+2) character grid: a one-character
// border, a body of width 3n, and a circular emblem drawn from the middle of
// the body outwards. The package only ever builds the top half of the grid;
// the bottom half is its mirror image.
//
// # Rendering
//
// [Render] is the single entry point most callers need:
//
//	out, err := flag.Render(4, flag.DefaultCharacters())
//	if err != nil {
//	    return err // errors.ErrCodeInvalidArgument
//	}
//	fmt.Print(out)
//
// The individual stages are exported for callers that want to inspect or
// post-process the grid:
//
//  1. [Validate]: reject odd, negative or oversized sizes
//  2. [ComputeDimensions]: derive the body, border and emblem geometry
//  3. [BuildHalf]: build the top half and overlay the emblem
//  4. [Mirror]: append the reversed top half
//  5. [Grid.String]: serialise rows, each terminated by a newline
//
// # Sizes
//
// Only even non-negative sizes up to [MaxSize] are accepted. Sizes given as text go through
// [ParseSize], which rejects non-integers before the parity and sign checks.
// Size 0 yields a degenerate flag made only of border rows.
//
// # Concurrency
//
// All functions are pure. Every call allocates its own grid, so Render is
// safe for concurrent use.
package flag
