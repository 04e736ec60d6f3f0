package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/opst/aptsales/cmd/aptsalesd/handlers"
	"github.com/opst/aptsales/pkg/admin"
	"github.com/opst/aptsales/pkg/auth"
	"github.com/opst/aptsales/pkg/domain/aptsales"
	"github.com/opst/aptsales/pkg/pages"
	"github.com/opst/aptsales/pkg/pdf"
	"github.com/opst/aptsales/pkg/utils/echoutil"
)

const (
	adminLogin = "/admin/login/"
	adminTop   = "/admin/"
)

func BuildServer(apt aptsales.Aptsales, printer pdf.Printer, loglevel string) (*echo.Echo, error) {
	e := echo.New()

	echoutil.SetLevel(e, loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}

	e.Pre(middleware.AddTrailingSlash())
	e.Use(echoutil.LogHandlerFunc)

	conf := apt.Config()
	signer := auth.NewSigner(conf.SecretKey())
	users := apt.User().Database()

	renderer, err := pages.NewRenderer()
	if err != nil {
		return nil, err
	}
	src := &pages.Pages{
		Builder:  pages.NewBuilder(apt.Apartment().Database(), apt.Client().Database()),
		Renderer: renderer,
	}
	gen := pdf.NewGenerator(printer, conf.PDF().Concurrency(), pdf.WithLogger(e.Logger))

	e.POST("/api/login/access-token/", handlers.AccessTokenHandler(
		users, signer, conf.Auth().AccessTokenTTL(),
	))

	{
		pg := e.Group("/pages")
		pg.GET("/", handlers.PageHandler(src, pages.Page1))
		for _, n := range pages.All[1:] {
			pg.GET("/"+n.String()+"/", handlers.PageHandler(src, n))
		}
		pg.GET(
			"/Generate-pdf/:clientId/",
			handlers.GeneratePdfHandler(
				apt.Client().Database(), apt.Apartment().Database(), src, gen, "clientId",
			),
			handlers.RequireUser(users, signer),
		)
	}

	{
		registry := admin.NewRegistry(admin.StoresOf(apt))
		dash, err := admin.NewDashboard()
		if err != nil {
			return nil, err
		}

		e.GET(adminLogin, handlers.AdminLoginPageHandler(dash))
		e.POST(adminLogin, handlers.AdminLoginHandler(
			users, dash, signer, conf.Auth().SessionTTL(), adminTop,
		))
		e.GET("/admin/logout/", handlers.AdminLogoutHandler(adminLogin))

		api := e.Group("/admin/api", handlers.AdminAPISession(users, signer))
		api.GET("/models/", handlers.AdminModelsHandler(registry))
		api.GET("/:model/", handlers.AdminListHandler(registry, "model"))
		api.POST("/:model/", handlers.AdminCreateHandler(registry, "model"))
		api.GET("/:model/:id/", handlers.AdminGetHandler(registry, "model", "id"))
		api.PUT("/:model/:id/", handlers.AdminUpdateHandler(registry, "model", "id"))
		api.DELETE("/:model/:id/", handlers.AdminDeleteHandler(registry, "model", "id"))

		session := handlers.AdminPageSession(users, signer, adminLogin)
		e.GET(adminTop, handlers.AdminIndexHandler(registry, dash), session)
		e.GET("/admin/:model/", handlers.AdminListPageHandler(registry, dash, "model"), session)
	}

	return e, nil
}
