package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file types Load understands.
var Extensions = []string{".csv", ".json", ".txt"}

// Supported reports whether Load can read path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a chart, picking the parser from the file extension.
func Load(path string) (Chart, error) {
	var (
		c   Chart
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		c, err = LoadCSV(path)
	case ".json":
		c, err = LoadJSON(path)
	case ".txt":
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			c, err = ParseText(string(data))
		}
	default:
		return Chart{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		return Chart{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if c.Title == "" {
		c.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return c, nil
}
