package core

// Transformer mutates a ParseResult in place before analysis or rendering.
type Transformer interface {
	Transform(res *ParseResult) error
}

// Chain applies transformers in order, stopping at the first error.
func Chain(res *ParseResult, transformers ...Transformer) error {
	for _, tr := range transformers {
		if err := tr.Transform(res); err != nil {
			return err
		}
	}
	return nil
}
