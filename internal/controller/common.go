package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"backoffice-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

const (
	defaultLimit  = 0
	defaultOffset = 0
)

type errorResponse struct {
	Reason string `json:"reason"`
}

type listInput struct {
	Limit  int `query:"limit" validate:"gte=0,lte=100"`
	Offset int `query:"offset" validate:"gte=0"`
}

func newListInput() listInput {
	return listInput{Limit: defaultLimit, Offset: defaultOffset}
}

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// bindInput fills input from the request and validates it, answering 400 on
// failure.
func bindInput(c echo.Context, v *validator.Validate, input any) error {
	if err := c.Bind(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	return validateInput(c, v, input)
}

func validateInput(c echo.Context, v *validator.Validate, input any) error {
	if err := v.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	return nil
}

var errorReasons = map[error]string{
	service.ErrClientNotFound:          "There is no client with given id",
	service.ErrContractNotFound:        "There is no contract with given id",
	service.ErrConsultantNotFound:      "There is no consultant with given id",
	service.ErrServiceNotFound:         "There is no service with given id",
	service.ErrLogEntryNotFound:        "There is no log entry with given id",
	service.ErrCommentNotFound:         "There is no comment with given id",
	service.ErrAnnouncementNotFound:    "There is no announcement with given id",
	service.ErrContractClientNotFound:  "There is no client with given clientId",
	service.ErrServiceContractNotFound: "There is no contract with given contractId",
	service.ErrClientHasContracts:      "Client still has contracts, delete or move them first",
	service.ErrNoNewChanges:            "Nothing to update, all values are the same",
}

// writeServiceError answers with the status matching the kind of err.
func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrClientHasContracts):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrReferenceNotFound):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	}

	reason := "Internal error"
	if status != http.StatusInternalServerError {
		reason = err.Error()
	}
	for target, r := range errorReasons {
		if errors.Is(err, target) {
			reason = r
			break
		}
	}

	if e := c.JSON(status, errorResponse{reason}); e != nil {
		return e
	}

	return err
}

func getAllErrorMessages(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}

	var builder strings.Builder
	for _, fe := range ve {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return getMessageForString(fe)
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return getMessageForNumber(fe)
	}

	if fe.Tag() == "required" {
		return "this field is required"
	}

	return "Unknown error (2)"
}

func getMessageForNumber(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	case "email":
		return "should be a valid email address"
	case "datetime":
		return "should be a date formatted as " + fe.Param()
	}

	return "incorrect value passed"
}
