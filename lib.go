package grove

import (
	"embed"
	"io/fs"
	"path"
)

//go:embed lib/*.grove
var libFS embed.FS

// LoadLib evaluates the bundled library scripts in env.
func LoadLib(env *Env) error {
	fis, err := fs.ReadDir(libFS, "lib")
	if err != nil {
		return err
	}
	for _, fi := range fis {
		name := path.Join("lib", fi.Name())
		f, err := libFS.Open(name)
		if err != nil {
			return err
		}
		err = Run(env, f, nil, name)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
