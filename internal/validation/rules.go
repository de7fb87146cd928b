package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// check is one named rule: a validator tag and the message reported when it fails.
type check struct {
	tag     string
	message string
}

func minLen(n int, message string) check {
	return check{tag: fmt.Sprintf("min=%d", n), message: message}
}

// collector evaluates rules field by field against an untyped input.
// Each field reports at most one violation: the first rule it fails.
type collector struct {
	v          *validator.Validate
	raw        map[string]any
	violations []Violation
}

func newCollector(v *validator.Validate, raw map[string]any) *collector {
	if raw == nil {
		raw = map[string]any{}
	}
	return &collector{v: v, raw: raw}
}

func (c *collector) add(field, message string) {
	c.violations = append(c.violations, Violation{Field: field, Message: message})
}

func (c *collector) err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &Error{Violations: c.violations}
}

// lookupText returns the trimmed string value of field. ok is false when the
// value is present but not textual.
func (c *collector) lookupText(field string) (value string, ok bool) {
	v, present := c.raw[field]
	if !present || v == nil {
		return "", true
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}

// requiredText enforces presence and then each check in order.
func (c *collector) requiredText(field string, checks ...check) string {
	value, ok := c.lookupText(field)
	if !ok {
		c.add(field, field+" must be text")
		return ""
	}
	if value == "" {
		c.add(field, field+" is required")
		return ""
	}
	c.apply(field, value, checks)
	return value
}

// optionalText applies checks only when the field carries a non-blank value.
func (c *collector) optionalText(field string, checks ...check) *string {
	value, ok := c.lookupText(field)
	if !ok {
		c.add(field, field+" must be text")
		return nil
	}
	if value == "" {
		return nil
	}
	c.apply(field, value, checks)
	return &value
}

func (c *collector) apply(field string, value any, checks []check) bool {
	for _, ch := range checks {
		if err := c.v.Var(value, ch.tag); err != nil {
			c.add(field, ch.message)
			return false
		}
	}
	return true
}

// requiredInt coerces a JSON number or numeric string to an int. Fractional
// values are rejected rather than truncated.
func (c *collector) requiredInt(field string, checks ...check) int {
	v, present := c.raw[field]
	if !present || v == nil {
		c.add(field, field+" is required")
		return 0
	}

	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			c.add(field, field+" must be a number")
			return 0
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			c.add(field, field+" is required")
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			c.add(field, field+" must be a number")
			return 0
		}
		f = parsed
	default:
		c.add(field, field+" must be a number")
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		c.add(field, field+" must be a number")
		return 0
	}
	if f != math.Trunc(f) {
		c.add(field, field+" must be a whole number")
		return 0
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		c.add(field, field+" is out of range")
		return 0
	}

	n := int(f)
	if !c.apply(field, n, checks) {
		return 0
	}
	return n
}

// optionalBool accepts a JSON boolean or a 0/1 integer.
func (c *collector) optionalBool(field string, def bool) bool {
	v, present := c.raw[field]
	if !present || v == nil {
		return def
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case json.Number:
		return t.String() != "0"
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			c.add(field, field+" must be a boolean")
			return def
		}
		return b
	default:
		c.add(field, field+" must be a boolean")
		return def
	}
}
