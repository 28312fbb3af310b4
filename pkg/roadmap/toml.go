package roadmap

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/phasemap/phasemap/pkg/errors"
)

// Load reads and validates a plan from a TOML file.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Plan{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan file %s", path)
		}
		return Plan{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read plan %s", path)
	}

	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return Plan{}, errors.Wrap(errors.ErrCodeInvalidPlan, err, "parse plan %s", path)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Save writes the plan to a TOML file, creating or truncating it.
// Typically used to export the builtin plan as an editable template.
func Save(path string, p Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode plan")
	}
	return nil
}
