package wizard

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDetector struct {
	files []string
	globs map[string][]string
}

func (f fakeDetector) Stat(path string) (os.FileInfo, error) {
	for _, name := range f.files {
		if name == path {
			return nil, nil
		}
	}
	return nil, os.ErrNotExist
}

func (f fakeDetector) Glob(pattern string) ([]string, error) {
	return f.globs[pattern], nil
}

func TestDetect(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		result := Detect(fakeDetector{})
		assert.Empty(t, result.ExistingEditor)
		assert.Empty(t, result.ExistingOutput)
		assert.Empty(t, result.OtherDocuments)
	})

	t.Run("finds editor and output", func(t *testing.T) {
		result := Detect(fakeDetector{files: []string{"scoreconf.yml", "scoring-engine.yml"}})
		assert.Equal(t, "scoreconf.yml", result.ExistingEditor)
		assert.Equal(t, "scoring-engine.yml", result.ExistingOutput)
	})

	t.Run("prefers yml over yaml", func(t *testing.T) {
		result := Detect(fakeDetector{files: []string{"scoreconf.yml", "scoreconf.yaml"}})
		assert.Equal(t, "scoreconf.yml", result.ExistingEditor)
	})

	t.Run("falls back to yaml extension", func(t *testing.T) {
		result := Detect(fakeDetector{files: []string{"scoreconf.yaml"}})
		assert.Equal(t, "scoreconf.yaml", result.ExistingEditor)
	})

	t.Run("collects other documents", func(t *testing.T) {
		result := Detect(fakeDetector{
			globs: map[string][]string{"*.scoreconf.yml": {"practice.scoreconf.yml"}},
		})
		assert.Equal(t, []string{"practice.scoreconf.yml"}, result.OtherDocuments)
	})
}
