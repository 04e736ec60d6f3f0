package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/opst/aptsales/pkg/admin"
	apierr "github.com/opst/aptsales/pkg/api-types-binding/errors"
	apiadmin "github.com/opst/aptsales/pkg/api/types/admin"
	"github.com/opst/aptsales/pkg/auth"
	"github.com/opst/aptsales/pkg/domain"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
	kdbuser "github.com/opst/aptsales/pkg/domain/user/db"
)

const msgInvalidLogin = "Invalid credentials"

// AdminLoginPageHandler responds the login form.
func AdminLoginPageHandler(dash *admin.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		html, err := dash.Login(admin.LoginPage{Title: admin.Title})
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.HTMLBlob(http.StatusOK, html)
	}
}

// AdminLoginHandler signs in an active superuser and starts a session.
//
// On success, it redirects to next.
func AdminLoginHandler(
	users kdbuser.UserInterface,
	dash *admin.Dashboard,
	issuer Issuer,
	ttl time.Duration,
	next string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		username := c.FormValue("username")

		u, err := auth.AuthenticateAdmin(ctx, users, username, c.FormValue("password"))
		if errors.Is(err, auth.ErrBadCredential) || errors.Is(err, auth.ErrNotAdministrator) {
			html, err := dash.Login(admin.LoginPage{
				Title: admin.Title, Username: username, Error: msgInvalidLogin,
			})
			if err != nil {
				return apierr.InternalServerError(err)
			}
			return c.HTMLBlob(http.StatusBadRequest, html)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		token, exp, err := issuer.Issue(auth.Session, u.Id, ttl)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		c.SetCookie(&http.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			Expires:  exp,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.Redirect(http.StatusFound, next)
	}
}

// AdminLogoutHandler clears the session and redirects to loginPath.
func AdminLogoutHandler(loginPath string) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.Redirect(http.StatusFound, loginPath)
	}
}

var errNoSession = errors.New("no valid admin session")

// adminOf finds the user of the admin session.
//
// When there are no sessions or the user can not administer, it returns errNoSession.
func adminOf(ctx context.Context, c echo.Context, users kdbuser.UserInterface, verifier Verifier) (domain.User, error) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return domain.User{}, errNoSession
	}
	id, err := verifier.Verify(auth.Session, cookie.Value)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", errNoSession, err)
	}
	u, err := users.Get(ctx, id)
	if errors.Is(err, domerr.ErrMissing) {
		return domain.User{}, fmt.Errorf("%w: %w", errNoSession, err)
	} else if err != nil {
		return domain.User{}, err
	}
	if !u.CanAdminister() {
		return domain.User{}, fmt.Errorf("%w: %w", errNoSession, auth.ErrNotAdministrator)
	}
	return u, nil
}

// AdminPageSession is a middleware for dashboard pages.
//
// Requests without valid sessions are redirected to loginPath.
func AdminPageSession(users kdbuser.UserInterface, verifier Verifier, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, err := adminOf(c.Request().Context(), c, users, verifier)
			if errors.Is(err, errNoSession) {
				return c.Redirect(http.StatusFound, loginPath)
			} else if err != nil {
				return apierr.InternalServerError(err)
			}
			c.Set(currentUserKey, u)
			return next(c)
		}
	}
}

// AdminAPISession is a middleware for dashboard JSON APIs.
//
// Requests without valid sessions are responded 401.
func AdminAPISession(users kdbuser.UserInterface, verifier Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, err := adminOf(c.Request().Context(), c, users, verifier)
			if errors.Is(err, errNoSession) {
				return apierr.Unauthorized(msgNotAuthenticated, err)
			} else if err != nil {
				return apierr.InternalServerError(err)
			}
			c.Set(currentUserKey, u)
			return next(c)
		}
	}
}

// AdminIndexHandler responds the dashboard top page.
func AdminIndexHandler(registry *admin.Registry, dash *admin.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		html, err := dash.Index(admin.IndexPageOf(registry))
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.HTMLBlob(http.StatusOK, html)
	}
}

// AdminListPageHandler responds the list page of a model view.
func AdminListPageHandler(registry *admin.Registry, dash *admin.Dashboard, modelKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		view, ok := registry.Lookup(c.Param(modelKey))
		if !ok {
			return apierr.NotFound("Model not found")
		}
		q, err := listQuery(c)
		if err != nil {
			return apierr.BadRequest("page and page_size should be integers", err)
		}
		page, err := view.Model.List(ctx, q)
		if err != nil {
			return recordError(err)
		}
		lp, err := admin.ListPageOf(registry, view, q, page)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		html, err := dash.List(lp)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.HTMLBlob(http.StatusOK, html)
	}
}

// AdminModelsHandler responds metadata of model views.
func AdminModelsHandler(registry *admin.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		views := registry.Views()
		models := make([]apiadmin.Model, 0, len(views))
		for _, v := range views {
			models = append(models, v.Meta())
		}
		return c.JSON(http.StatusOK, apiadmin.Index{Title: admin.Title, Models: models})
	}
}

// AdminListHandler responds a page of records as JSON.
//
// Query parameters are `search`, `sort`, `desc`, `page` and `page_size`.
func AdminListHandler(registry *admin.Registry, modelKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		view, ok := registry.Lookup(c.Param(modelKey))
		if !ok {
			return apierr.NotFound("Model not found")
		}
		q, err := listQuery(c)
		if err != nil {
			return apierr.BadRequest("page and page_size should be integers", err)
		}
		page, err := view.Model.List(ctx, q)
		if err != nil {
			return recordError(err)
		}
		return c.JSON(http.StatusOK, apiadmin.List{
			Items:    page.Items,
			Total:    page.Total,
			Page:     page.Page,
			PageSize: page.PageSize,
			Pages:    page.Pages(),
		})
	}
}

func AdminGetHandler(registry *admin.Registry, modelKey string, idKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		view, ok := registry.Lookup(c.Param(modelKey))
		if !ok {
			return apierr.NotFound("Model not found")
		}
		r, err := view.Model.Get(ctx, c.Param(idKey))
		if err != nil {
			return recordError(err)
		}
		return c.JSON(http.StatusOK, r)
	}
}

func AdminCreateHandler(registry *admin.Registry, modelKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		view, ok := registry.Lookup(c.Param(modelKey))
		if !ok {
			return apierr.NotFound("Model not found")
		}
		if !view.CanCreate {
			return apierr.Forbidden(view.Plural+" can not be created", nil)
		}
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return apierr.BadRequest("request body is not readable", err)
		}
		r, err := view.Model.Create(ctx, body)
		if err != nil {
			return recordError(err)
		}
		return c.JSON(http.StatusCreated, r)
	}
}

func AdminUpdateHandler(registry *admin.Registry, modelKey string, idKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		view, ok := registry.Lookup(c.Param(modelKey))
		if !ok {
			return apierr.NotFound("Model not found")
		}
		if !view.CanEdit {
			return apierr.Forbidden(view.Plural+" can not be edited", nil)
		}
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return apierr.BadRequest("request body is not readable", err)
		}
		r, err := view.Model.Update(ctx, c.Param(idKey), body)
		if err != nil {
			return recordError(err)
		}
		return c.JSON(http.StatusOK, r)
	}
}

func AdminDeleteHandler(registry *admin.Registry, modelKey string, idKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		view, ok := registry.Lookup(c.Param(modelKey))
		if !ok {
			return apierr.NotFound("Model not found")
		}
		if !view.CanDelete {
			return apierr.Forbidden(view.Plural+" can not be deleted", nil)
		}
		if err := view.Model.Delete(ctx, c.Param(idKey)); err != nil {
			return recordError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func listQuery(c echo.Context) (domain.ListQuery, error) {
	q := domain.ListQuery{
		Search: c.QueryParam("search"),
		SortBy: c.QueryParam("sort"),
	}
	if d := c.QueryParam("desc"); d != "" {
		desc, err := strconv.ParseBool(d)
		if err != nil {
			return domain.ListQuery{}, fmt.Errorf("desc: %w", err)
		}
		q.Descending = desc
	}
	if p := c.QueryParam("page"); p != "" {
		page, err := strconv.Atoi(p)
		if err != nil {
			return domain.ListQuery{}, fmt.Errorf("page: %w", err)
		}
		q.Page = page
	}
	if s := c.QueryParam("page_size"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil {
			return domain.ListQuery{}, fmt.Errorf("page_size: %w", err)
		}
		q.PageSize = size
	}
	return q.Normalize(), nil
}

// recordError converts errors from admin.Model into HTTP errors.
func recordError(err error) error {
	switch {
	case errors.Is(err, admin.ErrPasswordRequired):
		return apierr.BadRequestWithReason(admin.ErrPasswordRequired.Error())
	case errors.Is(err, domerr.ErrMissing):
		return apierr.NotFound("Record not found")
	case errors.Is(err, domerr.ErrConflict):
		return apierr.Conflict("the record conflicts with another", apierr.WithError(err))
	case errors.Is(err, domerr.ErrInvalid):
		return apierr.BadRequest("check values of the record", err)
	default:
		return apierr.InternalServerError(err)
	}
}
