package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxAccountID extracts the token subject injected by the Auth middleware
// and performs a fast-fail check before any service call: a missing or
// mistyped account id proves the middleware did not run, so the request is
// rejected rather than passed through with a zero subject.
func ctxAccountID(c echo.Context) (int64, error) {
	accountID, ok := c.Get("account_id").(int64)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return accountID, nil
}
