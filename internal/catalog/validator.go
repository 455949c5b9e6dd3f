package catalog

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/forgeline/brandforge/internal/design"
	apperrors "github.com/forgeline/brandforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	templateIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	tokenPathPattern  = regexp.MustCompile(`^(colors|fonts)\.[a-z0-9_]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("template_id", func(fl validator.FieldLevel) bool {
			return templateIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateTemplate performs schema and cross-field validation on a
// template descriptor. Style bindings must look like token paths; the
// renderer tolerates anything, but a binding that can never resolve is
// a catalog authoring mistake worth rejecting up front.
func ValidateTemplate(tmpl *design.Template) error {
	if tmpl == nil {
		return apperrors.NewValidationError("template", "template is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(tmpl); err != nil {
		return convertValidationError(tmpl.ID, err)
	}

	if len(tmpl.Slots) == 0 {
		return apperrors.NewValidationError("slots", fmt.Sprintf("template %q declares no slots", tmpl.ID), nil)
	}

	for property, path := range tmpl.Style.Bindings {
		if !tokenPathPattern.MatchString(path) {
			return apperrors.NewValidationError(
				fmt.Sprintf("style.%s", property),
				fmt.Sprintf("binding %q is not a token path (expected \"colors.<name>\" or \"fonts.<name>\")", path),
				nil,
			)
		}
	}

	return nil
}

func convertValidationError(templateID string, err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		field := first.Namespace()
		return apperrors.NewValidationError(field, fmt.Sprintf("template %q fails %q", templateID, first.Tag()), err)
	}
	return apperrors.NewValidationError("template", err.Error(), err)
}
