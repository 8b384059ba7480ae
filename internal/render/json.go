package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/claude-list/claude-list/internal/inventory"
)

// JSON writes r as indented JSON followed by a newline.
func JSON(w io.Writer, r *inventory.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
