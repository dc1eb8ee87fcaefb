package gopkg

import (
	"strings"

	"github.com/mattn/grove"
)

func init() {
	register("strings", map[string]grove.Factory{
		"Builder": newBuilder,
	})
}

type builder struct {
	grove.Methods
	b strings.Builder
}

func newBuilder() (*grove.Object, error) {
	sb := &builder{}
	sb.Methods = grove.Methods{
		"write": func(args []grove.Value) (grove.Value, error) {
			for _, a := range args {
				sb.b.WriteString(a.String())
			}
			return grove.Int(sb.b.Len()), nil
		},
		"len": noArgs("len", func() (grove.Value, error) {
			return grove.Int(sb.b.Len()), nil
		}),
		"string": noArgs("string", func() (grove.Value, error) {
			return grove.Str(sb.b.String()), nil
		}),
		"reset": noArgs("reset", func() (grove.Value, error) {
			sb.b.Reset()
			return nil, nil
		}),
	}
	return grove.NewObject("strings.Builder", sb), nil
}

func (sb *builder) String() string {
	return sb.b.String()
}
