package bench

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"os"
)

// profile carries the bench configuration. Flag values are the baseline; a
// config file, when given, is applied on top.
type profile struct {
	count    int
	capacity int
	strategy string
}

func (self *profile) load(data map[interface{}]interface{}) error {
	for k, v := range data {
		name, ok := k.(string)
		if !ok {
			return errors.Errorf("invalid profile key [%v]", k)
		}
		switch name {
		case "count":
			i, ok := v.(int)
			if !ok {
				return errors.New("invalid 'count' value")
			}
			self.count = i

		case "capacity":
			i, ok := v.(int)
			if !ok {
				return errors.New("invalid 'capacity' value")
			}
			self.capacity = i

		case "strategy":
			s, ok := v.(string)
			if !ok {
				return errors.New("invalid 'strategy' value")
			}
			self.strategy = s

		default:
			return errors.Errorf("unknown profile key '%s'", name)
		}
	}
	return nil
}

func (self *profile) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "unable to read profile [%s]", path)
	}
	dataMap := make(map[interface{}]interface{})
	if err := yaml.Unmarshal(data, dataMap); err != nil {
		return errors.Wrapf(err, "unable to unmarshal profile [%s]", path)
	}
	if err := self.load(dataMap); err != nil {
		return errors.Wrapf(err, "unable to load profile [%s]", path)
	}
	return nil
}
