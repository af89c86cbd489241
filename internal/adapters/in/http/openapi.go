package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPIDocument []byte

// OpenAPIDocument returns the API description served at /swagger/doc.json.
func OpenAPIDocument() []byte {
	return append([]byte(nil), openAPIDocument...)
}

// RegisterSwaggerDoc makes the document available to echo-swagger under the default
// instance name.
func RegisterSwaggerDoc() {
	if _, err := swag.ReadDoc(swag.Name); err == nil {
		return
	}
	swag.Register(swag.Name, &swag.Spec{
		Title:            "Logistics API",
		Version:          "1.0.0",
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  string(openAPIDocument),
		LeftDelim:        "{%",
		RightDelim:       "%}",
	})
}

// RequestValidator checks /api requests against the OpenAPI document before they reach
// a handler.
type RequestValidator struct {
	router routers.Router
}

func NewRequestValidator() (*RequestValidator, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load OpenAPI document: %w", err)
	}

	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("create OpenAPI router: %w", err)
	}

	return &RequestValidator{router: router}, nil
}

// Middleware rejects requests that do not match the document with 400. Paths outside /api
// and API paths the document does not describe pass through to echo's own routing.
func (v *RequestValidator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, "/api/") {
				return next(c)
			}

			route, pathParams, err := v.router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					MultiError: true,
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			return next(c)
		}
	}
}

func validationMessage(err error) string {
	var parts []string
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, e := range multi {
			parts = append(parts, firstLine(e.Error()))
		}
	} else {
		parts = append(parts, firstLine(err.Error()))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
