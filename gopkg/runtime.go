package gopkg

import (
	"runtime"

	"github.com/mattn/grove"
)

func init() {
	register("runtime", map[string]grove.Factory{
		"Info": newInfo,
	})
}

func newInfo() (*grove.Object, error) {
	m := grove.Methods{
		"goos":         noArgs("goos", func() (grove.Value, error) { return grove.Str(runtime.GOOS), nil }),
		"goarch":       noArgs("goarch", func() (grove.Value, error) { return grove.Str(runtime.GOARCH), nil }),
		"version":      noArgs("version", func() (grove.Value, error) { return grove.Str(runtime.Version()), nil }),
		"numcpu":       noArgs("numcpu", func() (grove.Value, error) { return grove.Int(runtime.NumCPU()), nil }),
		"numgoroutine": noArgs("numgoroutine", func() (grove.Value, error) { return grove.Int(runtime.NumGoroutine()), nil }),
	}
	return grove.NewObject("runtime.Info", m), nil
}
