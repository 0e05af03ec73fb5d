// Package resource loads named animation definitions from YAML files, the
// kit's analog of declaring animations in platform resource files. Hosts
// load a [Registry] once at startup and can hot-reload it with [Watcher].
package resource

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/togglekit/pkg/animation"
	"github.com/go-drift/togglekit/pkg/errors"
)

// validate is the shared validator instance.
var validate = validator.New()

// Duration is a time.Duration that unmarshals from YAML strings like "250ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// AnimationSpec describes one animation in a resource file.
type AnimationSpec struct {
	// Name identifies the animation within the file.
	Name string `yaml:"name" validate:"required"`
	// Duration is the length of one iteration.
	Duration Duration `yaml:"duration" validate:"required"`
	// Repeat is the number of additional iterations; -1 repeats forever.
	Repeat int `yaml:"repeat" validate:"gte=-1"`
}

// File is the schema of an animation resource file.
type File struct {
	Animations []AnimationSpec `yaml:"animations" validate:"required,min=1,dive"`
}

// Registry holds parsed animation definitions, looked up by name.
type Registry struct {
	specs map[string]AnimationSpec
}

// Parse builds a Registry from YAML resource data.
func Parse(data []byte) (*Registry, error) {
	const op = "resource.Parse"

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(op, errors.KindResource, err)
	}
	if err := validate.Struct(file); err != nil {
		return nil, errors.Wrap(op, errors.KindResource, err)
	}

	specs := make(map[string]AnimationSpec, len(file.Animations))
	for _, spec := range file.Animations {
		if _, dup := specs[spec.Name]; dup {
			return nil, errors.New(op, errors.KindResource,
				"duplicate animation name %q", spec.Name)
		}
		specs[spec.Name] = spec
	}
	return &Registry{specs: specs}, nil
}

// Load reads and parses a resource file from disk.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("resource.Load", errors.KindResource, err)
	}
	return Parse(data)
}

// Names returns the defined animation names, in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	return names
}

// Animation builds a fresh playback handle for the named definition.
// Each call returns a new handle, so listeners attached by one consumer
// never leak to another.
func (r *Registry) Animation(name string) (*animation.Animation, error) {
	spec, ok := r.specs[name]
	if !ok {
		return nil, errors.New("resource.Animation", errors.KindResource,
			"no animation named %q", name)
	}
	return &animation.Animation{
		Name:        spec.Name,
		Duration:    time.Duration(spec.Duration),
		RepeatCount: spec.Repeat,
	}, nil
}
