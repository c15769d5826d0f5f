//go:build js && wasm

package bridge

import (
	"context"
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/yigit/coursescheduler/internal/app/models"
	"github.com/yigit/coursescheduler/internal/app/services"
)

// Register publishes greet and getInitialCourses on the JS global object.
// The function handles live as long as the module does and are never released.
func Register(svc services.CourseService, lgr zerolog.Logger) {
	global := js.Global()

	greet := js.FuncOf(func(this js.Value, args []js.Value) any {
		return svc.Greet(greetName(args))
	})

	initialCourses := js.FuncOf(func(this js.Value, args []js.Value) any {
		return courseArray(svc.GetInitialCourses(context.Background()))
	})

	global.Set(GreetFuncName, greet)
	global.Set(InitialCoursesFuncName, initialCourses)

	lgr.Info().
		Strs("functions", []string{GreetFuncName, InitialCoursesFuncName}).
		Msg("Bridge functions registered")
}

// greetName reads the first argument. Missing or undefined gives "";
// any other value is converted with the host's String().
func greetName(args []js.Value) string {
	if len(args) == 0 || args[0].IsUndefined() {
		return ""
	}
	if args[0].Type() == js.TypeString {
		return args[0].String()
	}
	return js.Global().Get("String").Invoke(args[0]).String()
}

// courseArray builds a JS array of plain objects with keys set in CourseKeys order
func courseArray(courses []models.Course) js.Value {
	objectCtor := js.Global().Get("Object")
	arr := js.Global().Get("Array").New(len(courses))
	for i, fields := range CourseRecords(courses) {
		obj := objectCtor.New()
		for _, f := range fields {
			obj.Set(f.Key, f.Value)
		}
		arr.SetIndex(i, obj)
	}
	return arr
}
