package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	apierr "github.com/opst/aptsales/pkg/api-types-binding/errors"
	kdbapt "github.com/opst/aptsales/pkg/domain/apartment/db"
	kdbclient "github.com/opst/aptsales/pkg/domain/client/db"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
	"github.com/opst/aptsales/pkg/pages"
	"github.com/opst/aptsales/pkg/pdf"
)

// PageSource renders document pages.
type PageSource interface {
	HTML(ctx context.Context, n pages.Number, params pages.Params) ([]byte, error)
}

// DocumentGenerator prints pages into a PDF document.
type DocumentGenerator interface {
	Generate(ctx context.Context, sources []pdf.Source) (pdf.Document, error)
}

var errMissingParam = errors.New("missing query parameter")

func intQuery(c echo.Context, name string) (int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, fmt.Errorf("%w: %s", errMissingParam, name)
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s should be an integer: %w", name, err)
	}
	return i, nil
}

// pageParams reads query parameters used by the page n.
func pageParams(c echo.Context, n pages.Number) (pages.Params, error) {
	switch n {
	case pages.Page1:
		no, err := intQuery(c, "no")
		if err != nil {
			return pages.Params{}, err
		}
		aptId, err := intQuery(c, "apt_id")
		if err != nil {
			return pages.Params{}, err
		}
		return pages.Params{No: int(no), AptId: aptId}, nil
	case pages.Page2:
		clientId, err := intQuery(c, "client_id")
		if err != nil {
			return pages.Params{}, err
		}
		return pages.Params{ClientId: clientId}, nil
	case pages.Page3, pages.Page8, pages.Page9, pages.Page10:
		aptId, err := intQuery(c, "apt_id")
		if err != nil {
			return pages.Params{}, err
		}
		return pages.Params{AptId: aptId}, nil
	default:
		return pages.Params{}, nil
	}
}

// PageHandler responds HTML of the document page n.
func PageHandler(src PageSource, n pages.Number) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		params, err := pageParams(c, n)
		if err != nil {
			return apierr.UnprocessableEntity("query parameters should be integers", err)
		}

		html, err := src.HTML(ctx, n, params)
		if err != nil {
			var nf *pages.NotFoundError
			if errors.As(err, &nf) {
				return apierr.NotFound(nf.Reason)
			}
			return apierr.InternalServerError(err)
		}
		return c.HTMLBlob(http.StatusOK, html)
	}
}

// GeneratePdfHandler responds the whole document of the client as a PDF attachment.
//
// Pages failed to be rendered are replaced with error pages.
func GeneratePdfHandler(
	clients kdbclient.ClientInterface,
	apartments kdbapt.ApartmentInterface,
	src PageSource,
	gen DocumentGenerator,
	clientIdKey string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		clientId, err := strconv.ParseInt(c.Param(clientIdKey), 10, 64)
		if err != nil {
			return apierr.UnprocessableEntity("client id should be an integer", err)
		}

		client, err := clients.Get(ctx, clientId)
		if errors.Is(err, domerr.ErrMissing) {
			return apierr.NotFound(pages.ClientNotFound)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		apt, err := apartments.Get(ctx, client.AptId)
		if errors.Is(err, domerr.ErrMissing) {
			return apierr.NotFound(pages.ApartmentNotFound)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		reqs := pages.DocumentOf(client, apt)
		sources := make([]pdf.Source, 0, len(reqs))
		for _, r := range reqs {
			sources = append(sources, func(ctx context.Context) ([]byte, error) {
				return src.HTML(ctx, r.Number, r.Params)
			})
		}

		doc, err := gen.Generate(ctx, sources)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if len(doc.Failed) != 0 {
			c.Logger().Warnf("document for client %d has error pages: %v", clientId, doc.Failed)
		}

		c.Response().Header().Set(
			echo.HeaderContentDisposition, "attachment; filename="+doc.Filename,
		)
		return c.Blob(http.StatusOK, "application/pdf", doc.PDF)
	}
}
