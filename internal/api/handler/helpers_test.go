package handler

import (
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

func jsonBody(body string) io.Reader {
	return strings.NewReader(body)
}

func asHTTPError(err error, target **echo.HTTPError) bool {
	return errors.As(err, target)
}
