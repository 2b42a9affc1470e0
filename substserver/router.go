package main

import (
	"bytes"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo"
	"github.com/lyraproj/subst/api"
	"github.com/lyraproj/subst/provider"
	"github.com/lyraproj/subst/render"
	"github.com/lyraproj/subst/session"
)

// HeaderRequestID is the response header that carries the id assigned to a request
const HeaderRequestID = `X-Request-Id`

// templateCacheSize is the max number of compiled templates kept by the router
const templateCacheSize = 1024

type substituteRequest struct {
	Input      string            `json:"input"`
	Parameters map[string]string `json:"parameters"`
	Strict     bool              `json:"strict"`
}

type substituteResponse struct {
	Output string `json:"output"`
}

type namesResponse struct {
	Names []string `json:"names"`
}

func message(err error) map[string]string {
	return map[string]string{`message`: err.Error()}
}

// CreateRouter creates the echo.Echo for the substitution RESTful service. Parameters given with
// a request take precedence over the given params. When strict is true, a request that uses a
// parameter that cannot be found fails with status 400.
func CreateRouter(params api.Parameters, strict bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	log := hclog.Default().Named(`server`)
	e.Use(requestLogger(log))

	cache := session.NewTemplateCache(templateCacheSize)
	substitute := func(input string, rqParams api.Parameters, rqStrict bool) (string, error) {
		return session.Substitute(cache.Compile(input), api.Chain{rqParams, params}, strict || rqStrict)
	}

	e.POST(`/substitute`, func(c echo.Context) error {
		var rq substituteRequest
		if err := c.Bind(&rq); err != nil {
			return c.JSON(http.StatusBadRequest, message(err))
		}
		output, err := substitute(rq.Input, api.Map(rq.Parameters), rq.Strict)
		if err != nil {
			return c.JSON(http.StatusBadRequest, message(err))
		}
		return c.JSON(http.StatusOK, &substituteResponse{Output: output})
	})

	e.GET(`/substitute`, func(c echo.Context) error {
		qp := c.QueryParams()
		vars, err := provider.ParseVariables(qp[`var`])
		if err != nil {
			return c.JSON(http.StatusBadRequest, message(err))
		}
		output, err := substitute(qp.Get(`input`), vars, qp.Get(`strict`) == `true`)
		if err != nil {
			return c.JSON(http.StatusBadRequest, message(err))
		}

		renderAs := render.Name(qp.Get(`render`))
		if renderAs == `` {
			renderAs = render.JSON
		}
		out := bytes.Buffer{}
		if err = render.Render(renderAs, []render.Result{{Input: qp.Get(`input`), Output: output}}, &out); err != nil {
			return c.JSON(http.StatusBadRequest, message(err))
		}
		return c.Blob(http.StatusOK, contentType(renderAs), out.Bytes())
	})

	e.GET(`/names`, func(c echo.Context) error {
		names := cache.Compile(c.QueryParam(`input`)).Names()
		if names == nil {
			names = []string{}
		}
		return c.JSON(http.StatusOK, &namesResponse{Names: names})
	})
	return e
}

func contentType(renderAs render.Name) string {
	switch renderAs {
	case render.JSON:
		return echo.MIMEApplicationJSONCharsetUTF8
	case render.YAML:
		return `application/x-yaml; charset=UTF-8`
	default:
		return echo.MIMETextPlainCharsetUTF8
	}
}

func requestLogger(log hclog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := uuid.New().String()
			c.Response().Header().Set(HeaderRequestID, id)
			err := next(c)
			log.Debug(`request served`, `id`, id, `method`, c.Request().Method, `path`, c.Path(),
				`status`, c.Response().Status)
			return err
		}
	}
}
