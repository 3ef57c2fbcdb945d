package questions

import "fmt"

// TemplateFileError reports a template file that could not be opened or read.
type TemplateFileError struct {
	Path string
	Err  error
}

func (e *TemplateFileError) Error() string {
	return fmt.Sprintf("template file %q: %v", e.Path, e.Err)
}

func (e *TemplateFileError) Unwrap() error {
	return e.Err
}
