package nyxlang

// Output holds every stage's result; later fields stay zero when an earlier stage failed.
type Output struct {
	Tokens []Token
	Root   *Root
	C      string
}

// Compile runs the stages in order and stops at the first one that reports errors.
func Compile(src *Source, options GenerateOptions) (out Output, err error) {
	var diags Diagnostics
	out.Tokens, diags = Lex(src)
	if len(diags) > 0 {
		return out, diags
	}

	out.Root, err = Parse(out.Tokens)
	if err != nil {
		return out, err
	}

	out.C, err = Generate(out.Root, options)
	if err != nil {
		return out, err
	}

	return out, nil
}
