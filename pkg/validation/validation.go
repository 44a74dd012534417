package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	pkgerrors "swimtrack/backend/pkg/errors"
)

const (
	tagISODate   = "isodate"
	tagClockTime = "clocktime"
)

var clockTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Register adds the custom binding rules to gin's validator engine:
//
//	isodate   YYYY-MM-DD calendar date
//	clocktime HH:MM 24h wall clock time
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

// RegisterOn adds the custom rules to v and reports fields by their json name.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation(tagISODate, isoDate); err != nil {
		return err
	}
	return v.RegisterValidation(tagClockTime, clockTime)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func clockTime(fl validator.FieldLevel) bool {
	return clockTimePattern.MatchString(fl.Field().String())
}

// ToValidationError converts binding errors into a ValidationError with one issue
// per failed field. Other errors become a single issue at root.
func ToValidationError(err error, root string) *pkgerrors.ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return pkgerrors.NewValidationError(root, err.Error())
	}

	issues := make([]pkgerrors.Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, pkgerrors.Issue{
			Path:    fieldPath(root, fe),
			Message: message(fe),
		})
	}
	return &pkgerrors.ValidationError{Issues: issues}
}

// fieldPath drops the struct type from the namespace, so "CreateTeamRequest.name"
// under root "body" becomes "body.name".
func fieldPath(root string, fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if root == "" {
		return ns
	}
	return root + "." + ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min", "gte", "gt":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte", "lt":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case tagISODate:
		return "must be a date in YYYY-MM-DD format"
	case tagClockTime:
		return "must be a time in HH:MM format"
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}
