package util

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/evergreen-ci/utility"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

func ReadFileYAML(path string, target interface{}) error {
	if !utility.FileExists(path) {
		return errors.Errorf("file %s does not exist", path)
	}

	yamlData, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "invalid file: %s", path)
	}

	if err := yaml.Unmarshal(yamlData, target); err != nil {
		return errors.Wrapf(err, "problem parsing yaml/json from file %s", path)
	}

	return nil
}

// AppendString adds data to the end of the file at fn, creating it if
// needed. Report sinks are append-only surfaces, so this never truncates.
func AppendString(fn string, data string) error {
	f, err := os.OpenFile(fn, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	return errors.WithStack(writeBytes(f, []byte(data)))
}

func writeBytes(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return errors.WithStack(err)
	}

	if n != len(data) {
		return errors.Errorf("wrote %d bytes of %d", n, len(data))
	}

	return nil
}
