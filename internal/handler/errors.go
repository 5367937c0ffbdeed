package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	detailGameNotFound     = "Game not found"
	detailNotFound         = "Not Found"
	detailMethodNotAllowed = "Method Not Allowed"
	detailInternal         = "Internal Server Error"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Game not found"`
}

// ValidationIssue locates one invalid input. Loc starts with "body" or "path".
type ValidationIssue struct {
	Loc  []string `json:"loc" example:"body,title"`
	Msg  string   `json:"msg" example:"Field required"`
	Type string   `json:"type" example:"missing"`
}

// ValidationErrorResponse is returned with 422 Unprocessable Entity.
type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validator report json tag names instead of Go field names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func abortValidation(c *gin.Context, issues ...ValidationIssue) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: issues})
}

// bindingIssues translates a ShouldBindJSON error into validation issues.
func bindingIssues(err error) []ValidationIssue {
	var decodeErrs models.FieldErrors
	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &decodeErrs):
		issues := make([]ValidationIssue, 0, len(decodeErrs))
		for _, fe := range decodeErrs {
			issues = append(issues, ValidationIssue{Loc: []string{"body", fe.Field}, Msg: fe.Msg, Type: fe.Type})
		}
		return issues
	case errors.As(err, &fieldErrs):
		issues := make([]ValidationIssue, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			issue := ValidationIssue{Loc: []string{"body", fe.Field()}, Msg: fe.Error(), Type: fe.Tag()}
			if fe.Tag() == "required" {
				issue.Msg, issue.Type = "Field required", "missing"
			}
			issues = append(issues, issue)
		}
		return issues
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []ValidationIssue{{
			Loc:  loc,
			Msg:  fmt.Sprintf("Input should be a valid %s", kindName(typeErr.Type)),
			Type: "type_error",
		}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return []ValidationIssue{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}}
	default:
		return []ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return t.String()
	}
}

// respondStoreError maps catalog errors onto HTTP responses.
func respondStoreError(c *gin.Context, log *zap.Logger, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Detail: detailGameNotFound})
		return
	}

	_ = c.Error(err)
	log.Error("catalog operation failed",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: detailInternal})
}
