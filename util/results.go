package util

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
)

const ResultsIdFilename = "results.id"

// ResultsId is the manifest written alongside a benchmark run's csv
// datasets, identifying the run and its configuration.
type ResultsId struct {
	Id     string            `json:"id"`
	Values map[string]string `json:"values,omitempty"`
}

func WriteResultsId(id, outPath string, values map[string]string) error {
	rid := &ResultsId{Id: id, Values: values}
	data, err := json.MarshalIndent(rid, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outPath, ResultsIdFilename), data, os.ModePerm)
}

func ReadResultsId(path string) (*ResultsId, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rid := &ResultsId{}
	if err = json.Unmarshal(data, rid); err != nil {
		return nil, errors.Wrapf(err, "unable to unmarshal results id [%s]", path)
	}
	return rid, nil
}

// DiscoverResults walks root for results.id manifests, returning them keyed
// by the directory that contains them.
func DiscoverResults(root string) (map[string]*ResultsId, error) {
	results := make(map[string]*ResultsId)
	err := filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && filepath.Base(path) == ResultsIdFilename {
			rid, err := ReadResultsId(path)
			if err != nil {
				return err
			}
			results[filepath.Dir(path)] = rid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
