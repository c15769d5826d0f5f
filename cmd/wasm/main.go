//go:build js && wasm

// Command wasm builds the browser module. It publishes greet and
// getInitialCourses on the page's global object and then stays resident.
//
//	GOOS=js GOARCH=wasm go build -o web/main.wasm ./cmd/wasm
package main

import (
	"os"

	"github.com/yigit/coursescheduler/internal/app/services"
	"github.com/yigit/coursescheduler/internal/bridge"
	"github.com/yigit/coursescheduler/internal/pkg/logger"
)

func main() {
	// The browser console does not render ANSI colours
	lgr := logger.Configure(logger.Config{
		Level:  logger.InfoLevel,
		Output: os.Stdout,
	})

	svc := services.NewCourseService(services.DefaultRuntimeName, lgr)
	bridge.Register(svc, lgr)

	lgr.Info().Msg("Course scheduler module loaded successfully via WebAssembly")

	select {}
}
