package flag

// Render draws a flag of size n with the given characters.
// Invalid sizes fail with errors.ErrCodeInvalidArgument before any grid is
// built, so an error is never accompanied by partial output.
func Render(n int, c Characters) (string, error) {
	g, err := Build(n, c)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

// Build validates n and returns the full flag grid.
func Build(n int, c Characters) (Grid, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	d := ComputeDimensions(n)
	return Mirror(BuildHalf(d, c)), nil
}
