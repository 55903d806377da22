package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mergington/activities/internal/domain/model"
)

// entry is the YAML shape of one catalog activity.
type entry struct {
	Name            string   `koanf:"name"`
	Description     string   `koanf:"description"`
	Schedule        string   `koanf:"schedule"`
	MaxParticipants int      `koanf:"max_participants"`
	Participants    []string `koanf:"participants"`
}

// Load reads a replacement catalog from a YAML file. The file must carry
// an "activities" list; activity names must be unique and non-empty.
func Load(path string) ([]model.Activity, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}

	var entries []entry
	if err := k.UnmarshalWithConf("activities", &entries, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]model.Activity, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, ErrMissingName
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = struct{}{}

		a := model.Activity{
			Name:            e.Name,
			Description:     e.Description,
			Schedule:        e.Schedule,
			MaxParticipants: e.MaxParticipants,
			Participants:    e.Participants,
		}
		// Clone keeps the participant list non-nil for activities that
		// start the semester empty.
		out = append(out, a.Clone())
	}
	return out, nil
}
