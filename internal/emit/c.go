package emit

import (
	"fmt"

	"rrt/internal/shape"
)

// CEmitter renders the C-style template: a free function over doubles plus
// an example driver main. The driver is decoration; the reverse extractor
// only consumes the if/return pair.
type CEmitter struct{}

func (CEmitter) Target() string { return TargetC }

func (CEmitter) Emit(fn *shape.FunctionShape) string {
	return fmt.Sprintf(`#include <stdio.h>

double %s(%s) {
    if (%s) {
        return %s;
    } else {
        return %s;
    }
}

int main(void) {
    /* example driver, not used by the round trip */
    return 0;
}
`,
		fn.Name,
		paramList(fn.Params),
		shape.Render(fn.Cond),
		shape.Render(fn.TrueResult),
		shape.Render(fn.FalseResult),
	)
}
