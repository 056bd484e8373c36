package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/apierror"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/repository"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// max_digits bounds the integer part and max_scale the fractional digits of
	// a decimal, matching the decimal(p,s) columns they are stored in.
	_ = validate.RegisterValidation("max_digits", maxDigits)
	_ = validate.RegisterValidation("max_scale", maxScale)

	// Report fields by their JSON name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// decimalField returns the exact decimal under validation. The custom type
// func hands validators a float64, so the original field is read from the
// parent struct when possible.
func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if parent := reflect.Indirect(fl.Parent()); parent.Kind() == reflect.Struct {
		if f := parent.FieldByName(fl.StructFieldName()); f.IsValid() {
			if f = reflect.Indirect(f); f.IsValid() {
				if d, ok := f.Interface().(decimal.Decimal); ok {
					return d, true
				}
			}
		}
	}
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(field.Float()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(field.Int()), true
	default:
		return decimal.Decimal{}, false
	}
}

func maxDigits(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return d.Abs().LessThan(decimal.New(1, int32(n)))
}

func maxScale(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return d.Equal(d.Truncate(int32(n)))
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

// bindListQuery reads skip/limit from the query string.
func bindListQuery(c *gin.Context) (dto.ListQuery, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query: "+err.Error()))
		return q, false
	}
	return q, runValidation(c, &q)
}

func runValidation(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	// ids are stored as signed 64-bit integers
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps service and repository errors to HTTP responses.
// Unknown errors are attached to the context so the ErrorHandler middleware
// logs them and answers with a generic 500.
func writeServiceError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.NotFound(entity))
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, apierror.Conflict(entity))
	case errors.Is(err, repository.ErrReferenceViolation):
		c.JSON(http.StatusConflict, apierror.Reference(entity))
	case errors.Is(err, repository.ErrOutOfRange):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(entity+" has a value outside the column range"))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}
