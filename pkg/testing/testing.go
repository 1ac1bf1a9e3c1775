package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the project root so tests share the logs/ dir and relative fixtures with the server.
	//
	//   in some_test.go,
	//   import (
	//     _ "carecompanion.app/companion-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
