package emit

import (
	"fmt"

	"rrt/internal/shape"
)

// JavaEmitter renders the Java-style template: a static method on a class
// wrapper. The class name is fixed decoration matching the artifact name.
type JavaEmitter struct{}

// JavaClassName wraps the generated method; it doubles as the artifact
// base name (Original.java).
const JavaClassName = "Original"

func (JavaEmitter) Target() string { return TargetJava }

func (JavaEmitter) Emit(fn *shape.FunctionShape) string {
	return fmt.Sprintf(`public class %s {
    public static double %s(%s) {
        if (%s) {
            return %s;
        } else {
            return %s;
        }
    }
}
`,
		JavaClassName,
		fn.Name,
		paramList(fn.Params),
		shape.Render(fn.Cond),
		shape.Render(fn.TrueResult),
		shape.Render(fn.FalseResult),
	)
}
