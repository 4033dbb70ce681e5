package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/alexanderramin/learnhub/internal/domain"
)

// schemaValidator checks struct tags on the catalog schema and reports
// fields by their YAML names.
type schemaValidator struct {
	core  *validator.Validate
	trans ut.Translator
}

// newSchemaValidator returns a validator with English messages. If the
// translations cannot be registered, errors fall back to the validator's
// own wording.
func newSchemaValidator() *schemaValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &schemaValidator{core: v, trans: englishTranslator(v)}
}

func englishTranslator(v *validator.Validate) ut.Translator {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, found := uni.GetTranslator("en")
	if !found {
		return nil
	}
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil
	}
	return trans
}

// message renders fe in English when a translator is available.
func (v *schemaValidator) message(fe validator.FieldError) string {
	if v.trans == nil {
		return fe.Error()
	}
	return fe.Translate(v.trans)
}

func (v *schemaValidator) Struct(s *Schema) []error {
	err := v.core.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{err}
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		// Namespace is "Schema.courses[0].title"; drop the root type name.
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		errs = append(errs, fmt.Errorf("%s: %s", path, v.message(fe)))
	}
	return errs
}

// ValidateSchema checks field-level rules. It returns every problem found.
func ValidateSchema(s *Schema) []error {
	return newSchemaValidator().Struct(s)
}

// ValidateCourses checks rules that span records: unique course ids,
// module and lesson ids unique within their course, and at least one
// lesson per module.
func ValidateCourses(courses []domain.Course) []error {
	var errs []error
	if len(courses) == 0 {
		return []error{errors.New("catalog has no courses")}
	}

	courseIDs := make(map[string]bool, len(courses))
	for i, c := range courses {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("courses[%d]: id is required", i))
			continue
		}
		if courseIDs[c.ID] {
			errs = append(errs, fmt.Errorf("courses[%d]: duplicate course id %q", i, c.ID))
		}
		courseIDs[c.ID] = true

		if len(c.Modules) == 0 {
			errs = append(errs, fmt.Errorf("course %q: has no modules", c.ID))
		}
		moduleIDs := make(map[string]bool)
		lessonIDs := make(map[string]bool)
		for _, m := range c.Modules {
			if moduleIDs[m.ID] {
				errs = append(errs, fmt.Errorf("course %q: duplicate module id %q", c.ID, m.ID))
			}
			moduleIDs[m.ID] = true
			if len(m.Lessons) == 0 {
				errs = append(errs, fmt.Errorf("course %q: module %q has no lessons", c.ID, m.ID))
			}
			for _, l := range m.Lessons {
				if l.ID == "" {
					errs = append(errs, fmt.Errorf("course %q: module %q has a lesson without id", c.ID, m.ID))
					continue
				}
				if lessonIDs[l.ID] {
					errs = append(errs, fmt.Errorf("course %q: duplicate lesson id %q", c.ID, l.ID))
				}
				lessonIDs[l.ID] = true
			}
		}
	}
	return errs
}
