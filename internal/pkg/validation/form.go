package validation

import "strings"

// FieldState is the validation outcome for a single form field.
type FieldState struct {
	Name    string `json:"name"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Form collects named required-field values and validates them the same
// way the client script does: a field passes when its trimmed value is
// non-empty.
type Form struct {
	fields []FieldState
	values map[string]string
	order  []string
}

// NewForm creates an empty form validator.
func NewForm() *Form {
	return &Form{values: make(map[string]string)}
}

// Require adds a required field with its submitted value.
func (f *Form) Require(name, value string) *Form {
	if _, ok := f.values[name]; !ok {
		f.order = append(f.order, name)
	}
	f.values[name] = value
	return f
}

// Validate marks every required field and returns the overall result.
// It is a pure function of the current field values.
func (f *Form) Validate() bool {
	f.fields = f.fields[:0]
	ok := true
	for _, name := range f.order {
		state := FieldState{Name: name, Valid: true}
		if strings.TrimSpace(f.values[name]) == "" {
			state.Valid = false
			state.Message = name + " is required"
			ok = false
		}
		f.fields = append(f.fields, state)
	}
	return ok
}

// Fields returns the per-field outcomes of the last Validate call.
func (f *Form) Fields() []FieldState {
	return f.fields
}

// Invalid returns the names of fields that failed the last Validate.
func (f *Form) Invalid() []string {
	var names []string
	for _, state := range f.fields {
		if !state.Valid {
			names = append(names, state.Name)
		}
	}
	return names
}
