package templates

import (
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Scaffold is the data passed to every template.
type Scaffold struct {
	Name      string
	BlockSize int
}

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Execute renders the named template into w.
func Execute(w io.Writer, name string, data Scaffold) error {
	content, err := Get(name)
	if err != nil {
		return err
	}
	t, err := template.New(name).Parse(content)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}

// WriteFile renders the named template into a new file at destPath.
func WriteFile(name, destPath string, data Scaffold) error {
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	if err := Execute(f, name, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
