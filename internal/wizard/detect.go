package wizard

import (
	"os"
	"path/filepath"
)

// DetectionResult holds what was found in the working directory.
type DetectionResult struct {
	ExistingEditor string   // editor document path if one exists
	ExistingOutput string   // previously generated engine config, if any
	OtherDocuments []string // other YAML files that may be editor documents
}

// Detector abstracts filesystem lookups for testing.
type Detector interface {
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

// Detect scans the working directory for existing documents.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	for _, p := range []string{"scoreconf.yml", "scoreconf.yaml"} {
		if _, err := d.Stat(p); err == nil {
			result.ExistingEditor = p
			break
		}
	}

	for _, p := range []string{"scoring-engine.yml", "scoring-engine.yaml"} {
		if _, err := d.Stat(p); err == nil {
			result.ExistingOutput = p
			break
		}
	}

	if matches, err := d.Glob("*.scoreconf.yml"); err == nil {
		result.OtherDocuments = matches
	}

	return result
}
