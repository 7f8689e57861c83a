package reports

import (
	"github.com/reusee/nyx/nyxlang"
)

type Report func(src *nyxlang.Source, err error)

func (Module) Report(
	output Output,
) Report {
	return func(src *nyxlang.Source, err error) {
		Render(output, src, err)
	}
}
