package plan

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ValidationError represents a single problem found in an input document
type ValidationError struct {
	Source      string
	Location    string
	Message     string
	Severity    string // "error" or "warning"
	Suggestions []string
}

func (e ValidationError) Error() string {
	location := ""
	if e.Location != "" {
		location = fmt.Sprintf(" (%s)", e.Location)
	}
	msg := fmt.Sprintf("%s%s: %s", e.Source, location, e.Message)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" [Suggestion: %s]", strings.Join(e.Suggestions, "; "))
	}
	return msg
}

// ValidationResult contains all validation errors grouped by type
type ValidationResult struct {
	StructureErrors []ValidationError
	ContentErrors   []ValidationError
	Warnings        []ValidationError
}

func (r *ValidationResult) HasErrors() bool {
	return len(r.StructureErrors) > 0 || len(r.ContentErrors) > 0
}

func (r *ValidationResult) AddError(category string, err ValidationError) {
	err.Severity = "error"
	switch category {
	case "structure":
		r.StructureErrors = append(r.StructureErrors, err)
	case "content":
		r.ContentErrors = append(r.ContentErrors, err)
	}
}

func (r *ValidationResult) AddWarning(err ValidationError) {
	err.Severity = "warning"
	r.Warnings = append(r.Warnings, err)
}

// Errors returns all errors in report order, structure first.
func (r *ValidationResult) Errors() []ValidationError {
	result := make([]ValidationError, 0, len(r.StructureErrors)+len(r.ContentErrors))
	result = append(result, r.StructureErrors...)
	result = append(result, r.ContentErrors...)
	return result
}

// Validator checks parsed week plans before any document is generated
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator creates a new validator with english messages
func NewValidator() (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

// Validate performs all checks on a parsed plan. Generation must not start
// when the result carries errors.
func (v *Validator) Validate(week *WeekPlan) *ValidationResult {
	result := &ValidationResult{}

	if err := v.validate.Struct(week); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fieldError := range fieldErrors {
				location := v.location(week, fieldError)
				if week.SingleLesson && location == "unit" {
					// legacy single-lesson documents carry no unit
					continue
				}
				result.AddError("structure", ValidationError{
					Source:   week.Source,
					Location: location,
					Message:  fieldError.Translate(v.translator),
				})
			}
		} else {
			result.AddError("structure", ValidationError{
				Source:  week.Source,
				Message: err.Error(),
			})
		}
	}

	v.validateContent(week, result)
	return result
}

// location maps a struct namespace like "WeekPlan.days[0].topic" onto the
// path readers see in their JSON document.
func (v *Validator) location(week *WeekPlan, fieldError validator.FieldError) string {
	location := strings.TrimPrefix(fieldError.Namespace(), "WeekPlan.")
	if week.SingleLesson {
		location = strings.TrimPrefix(location, "days[0].")
	}
	return location
}

func (v *Validator) validateContent(week *WeekPlan, result *ValidationResult) {
	if len(week.Days) == 0 {
		result.AddError("content", ValidationError{
			Source:   week.Source,
			Location: "days",
			Message:  "no lesson days found",
			Suggestions: []string{
				"add a days list for a weekly plan",
				"or a top-level topic for a single lesson",
			},
		})
	}

	for i, day := range week.Days {
		if len(day.Schedule) == 0 {
			result.AddWarning(ValidationError{
				Source:   week.Source,
				Location: v.dayLocation(week, i, "schedule"),
				Message:  fmt.Sprintf("day %q has no schedule; procedures and the agenda slide will be empty", day.Topic),
			})
		}
	}

	seenHandouts := make(map[string]int)
	for i, handout := range week.StudentHandouts {
		if handout.Name == "" {
			result.AddWarning(ValidationError{
				Source:   week.Source,
				Location: fmt.Sprintf("student_handouts[%d].name", i),
				Message:  "student handout has no name; the file will use a generic one",
			})
			continue
		}
		if prev, found := seenHandouts[handout.Name]; found {
			result.AddError("content", ValidationError{
				Source:   week.Source,
				Location: fmt.Sprintf("student_handouts[%d].name", i),
				Message:  fmt.Sprintf("duplicate handout name %q also used at student_handouts[%d]", handout.Name, prev),
				Suggestions: []string{
					"rename one of the handouts so their files do not overwrite each other",
				},
			})
			continue
		}
		seenHandouts[handout.Name] = i
	}
}

func (v *Validator) dayLocation(week *WeekPlan, index int, field string) string {
	if week.SingleLesson {
		return field
	}
	return fmt.Sprintf("days[%d].%s", index, field)
}
