package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/medreminder/internal/constants"
)

// validate is shared by every model. Built once in init() with the custom rules.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report json field names in errors
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"hhmm":     validateHHMM,
		"notblank": validateNotBlank,
		"repeat":   validateRepeat,
		"tone":     validateTone,
		"step10":   validateStep10,
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("models: registering %q validation: %v", tag, err))
		}
	}

	validate.RegisterStructValidation(alarmStructLevel, Alarm{})
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := time.Parse(constants.TimeFormat, fl.Field().String())
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateRepeat(fl validator.FieldLevel) bool {
	return IsValidRepeatPattern(constants.RepeatPattern(fl.Field().String()))
}

func validateTone(fl validator.FieldLevel) bool {
	return IsValidTone(constants.AlarmTone(fl.Field().String()))
}

func validateStep10(fl validator.FieldLevel) bool {
	return fl.Field().Int()%constants.VolumeStep == 0
}

// alarmStructLevel checks the fields whose meaning depends on another field
func alarmStructLevel(sl validator.StructLevel) {
	a := sl.Current().Interface().(Alarm)

	if a.RepeatPattern == constants.RepeatCustom &&
		(a.CustomHours < constants.MinCustomHours || a.CustomHours > constants.MaxCustomHours) {
		sl.ReportError(a.CustomHours, "custom_hours", "CustomHours", "customhours", "")
	}

	if a.SleepHoursEnabled {
		if _, err := time.Parse(constants.TimeFormat, a.SleepStartTime); err != nil {
			sl.ReportError(a.SleepStartTime, "sleep_start_time", "SleepStartTime", "hhmm", "")
		}
		if _, err := time.Parse(constants.TimeFormat, a.SleepEndTime); err != nil {
			sl.ReportError(a.SleepEndTime, "sleep_end_time", "SleepEndTime", "hhmm", "")
		}
	}
}

// validationError flattens validator output into one readable error
func validationError(kind string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid %s: %w", kind, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid %s: %s", kind, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s cannot be empty", field)
	case "hhmm":
		return fmt.Sprintf("%s must be HH:MM, got %q", field, fe.Value())
	case "repeat":
		return fmt.Sprintf("unknown repeat pattern %q", fe.Value())
	case "tone":
		return fmt.Sprintf("unknown alarm tone %q", fe.Value())
	case "customhours":
		return fmt.Sprintf("%s must be between %d and %d", field, constants.MinCustomHours, constants.MaxCustomHours)
	case "min", "max":
		return fmt.Sprintf("%s must be between %d and %d", field, constants.MinVolume, constants.MaxVolume)
	case "step10":
		return fmt.Sprintf("%s must be a multiple of %d", field, constants.VolumeStep)
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
