package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo"
	"github.com/lyraproj/subst/api"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func post(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, `/substitute`, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return serve(e, req)
}

func get(e *echo.Echo, path string, query url.Values) *httptest.ResponseRecorder {
	return serve(e, httptest.NewRequest(http.MethodGet, path+`?`+query.Encode(), nil))
}

func TestPost_substitute(t *testing.T) {
	e := CreateRouter(api.Map{`id`: `server`, `other`: `server other`}, false)
	rec := post(e, `{"input": "some user string: {id} {other} {  \"id\"  } {nope}", "parameters": {"id": "x"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"output": "some user string: x server other id None"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestPost_badJSON(t *testing.T) {
	e := CreateRouter(nil, false)
	rec := post(e, `{"input": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `message`)
}

func TestPost_strict(t *testing.T) {
	e := CreateRouter(api.Map{`a`: `A`}, false)
	rec := post(e, `{"input": "{a} {b}", "strict": true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var rs map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rs))
	require.Contains(t, rs[`message`], `[b]`)
}

func TestPost_serverStrict(t *testing.T) {
	e := CreateRouter(api.Map{`a`: `A`}, true)
	require.Equal(t, http.StatusBadRequest, post(e, `{"input": "{b}"}`).Code)
	require.Equal(t, http.StatusOK, post(e, `{"input": "{b}", "parameters": {"b": "B"}}`).Code)
}

func TestGet_substitute(t *testing.T) {
	e := CreateRouter(nil, false)
	rec := get(e, `/substitute`, url.Values{`input`: {`{a}-{b}`}, `var`: {`a=1`, `b:2`}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `"1-2"`, rec.Body.String())
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), `application/json`)
}

func TestGet_text(t *testing.T) {
	e := CreateRouter(api.Map{`a`: `A`}, false)
	rec := get(e, `/substitute`, url.Values{`input`: {`{a} {b}`}, `render`: {`s`}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "A None\n", rec.Body.String())
}

func TestGet_badVar(t *testing.T) {
	e := CreateRouter(nil, false)
	rec := get(e, `/substitute`, url.Values{`input`: {`{a}`}, `var`: {`a`}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `unable to parse variable 'a'`)
}

func TestGet_badRendering(t *testing.T) {
	e := CreateRouter(nil, false)
	rec := get(e, `/substitute`, url.Values{`input`: {`{a}`}, `render`: {`xml`}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet_names(t *testing.T) {
	e := CreateRouter(nil, false)
	rec := get(e, `/names`, url.Values{`input`: {`{a} {"b"} {c} {a}`}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"names": ["a", "c"]}`, rec.Body.String())

	rec = get(e, `/names`, url.Values{`input`: {`plain`}})
	require.JSONEq(t, `{"names": []}`, rec.Body.String())
}
