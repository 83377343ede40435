package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "safarihub/internal/errors"
)

// FieldType classifies how a raw form/JSON value is coerced and checked.
type FieldType int

const (
	// Text is a plain string field, trimmed before any other check.
	Text FieldType = iota
	// Price is a non-negative decimal amount.
	Price
	// Count is a whole number with a lower bound.
	Count
	// EnumText is a string restricted to a fixed value set.
	EnumText
	// List is comma-separated text split into an ordered string slice.
	List
)

// MediaMode says whether a kind carries an uploaded image.
type MediaMode int

const (
	// MediaNone means the kind never takes an upload. It may still carry a
	// plain image URL as an ordinary Text field (tours do).
	MediaNone MediaMode = iota
	// MediaUpload means an upload is mandatory on create and, when supplied
	// on update, replaces the stored reference.
	MediaUpload
)

// Field describes one validated field of a catalog kind.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Allowed  []string // EnumText membership set
	Default  string   // applied on create when the field is absent
	Min      int      // Count lower bound
}

// Schema is the declarative descriptor one parameterized CRUD engine runs
// on: required/enum/numeric/list fields, media mode and list ordering.
type Schema struct {
	// Kind is the singular resource name used in messages and cache keys.
	Kind string
	// MediaField is the multipart field and record attribute for uploads.
	MediaField string
	Fields     []Field
	Media      MediaMode
	// NewestFirst orders List results by creation time descending. Only the
	// gallery behaves this way; other kinds keep insertion order.
	NewestFirst bool
}

// Resource is implemented by every catalog record so the generic engine can
// drive all kinds.
type Resource interface {
	GetID() uuid.UUID
	SetID(id uuid.UUID)
	// Apply assigns coerced values produced by Schema.Validate. Keys absent
	// from the map leave the record untouched (partial merge).
	Apply(values map[string]any)
	SetMediaRef(ref string)
}

// ResourcePtr constrains a pointer to a concrete record type to Resource.
type ResourcePtr[T any] interface {
	*T
	Resource
}

// Validate trims and coerces raw string inputs against the schema. In
// partial mode absent fields are skipped; otherwise defaults are applied and
// required fields enforced. The returned map holds typed values keyed by
// field name. The error names the first failing field, walking fields in
// declaration order.
func (s Schema) Validate(input map[string]string, partial bool) (map[string]any, error) {
	values := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		raw, present := input[f.Name]
		raw = strings.TrimSpace(raw)
		if !present {
			if partial {
				continue
			}
			if f.Default != "" {
				raw = f.Default
			} else if f.Required {
				return nil, apperrors.NewValidationError(f.Name, "is required")
			} else {
				continue
			}
		}
		if raw == "" {
			if f.Required {
				return nil, apperrors.NewValidationError(f.Name, "must not be empty")
			}
			continue
		}

		v, err := coerce(f, raw)
		if err != nil {
			return nil, err
		}
		values[f.Name] = v
	}
	return values, nil
}

func coerce(f Field, raw string) (any, error) {
	switch f.Type {
	case Text:
		return raw, nil
	case Price:
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, apperrors.NewValidationError(f.Name, "must be a number")
		}
		if amount.IsNegative() {
			return nil, apperrors.NewValidationError(f.Name, "must not be negative")
		}
		return amount, nil
	case Count:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperrors.NewValidationError(f.Name, "must be a whole number")
		}
		if n < f.Min {
			return nil, apperrors.NewValidationError(f.Name, fmt.Sprintf("must be at least %d", f.Min))
		}
		return n, nil
	case EnumText:
		for _, allowed := range f.Allowed {
			if raw == allowed {
				return raw, nil
			}
		}
		return nil, apperrors.NewValidationError(f.Name, "must be one of "+strings.Join(f.Allowed, ", "))
	case List:
		return SplitList(raw), nil
	default:
		return raw, nil
	}
}

// SplitList turns comma-separated text into a trimmed, ordered slice with
// empty entries dropped.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
