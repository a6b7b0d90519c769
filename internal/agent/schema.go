package agent

import (
	"fmt"
	"strings"

	"productPhotoAi/internal/storage"
)

const maxAttributes = 6

// SchemaError reports a model reply that parsed as JSON but does not satisfy
// the expected shape for the step.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("agent: schema violation on %q: %s", e.Field, e.Reason)
}

func validateProduct(p *storage.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	if p.Name == "" {
		return &SchemaError{Field: "product", Reason: "missing or empty"}
	}
	if p.Category == "" {
		return &SchemaError{Field: "category", Reason: "missing or empty"}
	}
	if p.Confidence < 0 || p.Confidence > 100 {
		return &SchemaError{Field: "confidence", Reason: "must be between 0 and 100"}
	}
	if len(p.Attributes) > maxAttributes {
		p.Attributes = p.Attributes[:maxAttributes]
	}
	return nil
}

func validateIdeas(ideas []storage.Idea) error {
	if len(ideas) == 0 {
		return &SchemaError{Field: "ideas", Reason: "missing or empty"}
	}
	for i := range ideas {
		if strings.TrimSpace(ideas[i].ID) == "" {
			ideas[i].ID = fmt.Sprintf("I%d", i+1)
		}
		if strings.TrimSpace(ideas[i].Title) == "" {
			return &SchemaError{Field: fmt.Sprintf("ideas[%d].title", i), Reason: "missing or empty"}
		}
	}
	return nil
}

func validateShots(shots []storage.Shot) error {
	if len(shots) == 0 {
		return &SchemaError{Field: "shots", Reason: "missing or empty"}
	}
	for i := range shots {
		if shots[i].Index == 0 {
			shots[i].Index = i + 1
		}
		if strings.TrimSpace(shots[i].Title) == "" {
			return &SchemaError{Field: fmt.Sprintf("shots[%d].title", i), Reason: "missing or empty"}
		}
	}
	return nil
}
