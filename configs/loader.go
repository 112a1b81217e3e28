package configs

import (
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE config files on first use. Earlier files take precedence.
type Loader struct {
	paths []string
	load  func() ([]cue.Value, error)
}

// NewLoader validates every file against schema, a list of fields closed as a whole.
// An empty schema accepts anything.
func NewLoader(paths []string, schema string) Loader {
	return Loader{
		paths: paths,
		load: sync.OnceValues(func() ([]cue.Value, error) {
			ctx := cuecontext.New()

			var schemaValue cue.Value
			if schema != "" {
				schemaValue = ctx.CompileString("close({"+schema+"})", cue.Filename("schema"))
				if err := schemaValue.Err(); err != nil {
					return nil, fmt.Errorf("schema: %w", err)
				}
			}

			values := make([]cue.Value, 0, len(paths))
			for _, path := range paths {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, fmt.Errorf("read config: %w", err)
				}
				value := ctx.CompileBytes(content, cue.Filename(path))
				if err := value.Err(); err != nil {
					return nil, err
				}
				if schemaValue.Exists() {
					if err := schemaValue.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}
				values = append(values, value)
			}
			return values, nil
		}),
	}
}

func (l Loader) Paths() []string {
	return l.paths
}

// AssignFirst decodes the first value found at path into target.
// It returns ErrValueNotFound if no file defines path.
func (l Loader) AssignFirst(path string, target any) error {
	values, err := l.load()
	if err != nil {
		return err
	}
	cuePath := cue.ParsePath(path)
	if err := cuePath.Err(); err != nil {
		return err
	}
	for _, root := range values {
		value := root.LookupPath(cuePath)
		if !value.Exists() {
			continue
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
