package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/opst/aptsales/pkg/configs/server"
	"github.com/opst/aptsales/pkg/domain/aptsales"
	"github.com/opst/aptsales/pkg/pdf"
	"github.com/opst/aptsales/pkg/utils/filewatch"
)

func main() {

	pconfig := flag.String(
		"config-path", os.Getenv("APTSALES_CONFIG"), "path to config file",
	)
	schemaRepo := flag.String("schema-repo", os.Getenv("APTSALES_SCHEMA"), "schema repository path")
	loglevel := flag.String("loglevel", "warn", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")

	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	conf, err := server.LoadServerConfig(*pconfig)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	{
		ctx_, ccan, err := filewatch.UntilModifyContext(ctx, *pconfig)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer ccan()
		ctx = ctx_
	}

	options := []aptsales.Option{}
	if *schemaRepo != "" {
		options = append(options, aptsales.WithSchemaRepository(*schemaRepo))
	}
	apt, err := aptsales.Default(ctx, conf, options...)
	if err != nil {
		log.Fatalf("can not connect database: %s", err)
	}
	{
		ctx_, ccan := apt.Schema().Database().Context(ctx)
		defer ccan()
		ctx = ctx_
	}

	pdfconf := conf.PDF()
	printer := pdf.NewRodPrinter(pdf.RodConfig{
		Bin:        pdfconf.Browser(),
		ControlURL: pdfconf.ControlURL(),
		NoSandbox:  pdfconf.NoSandbox(),
		Timeout:    pdfconf.Timeout(),
		Idle:       pdfconf.Idle(),
	})

	e, err := BuildServer(apt, printer, *loglevel)
	if err != nil {
		log.Fatalf("can not build server: %s", err)
	}
	for _, r := range e.Routes() {
		e.Logger.Debugf("- mount handler: %s %s", strings.ToUpper(r.Method), r.Path)
	}

	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		addr := fmt.Sprintf(":%d", conf.Port())
		var err error
		if cert, key := *pcert, *pkey; cert != "" && key != "" {
			err = e.StartTLS(addr, cert, key)
		} else {
			err = e.Start(addr)
		}
		if err != nil && err != http.ErrServerClosed {
			ch <- err
		}
	}()

	exit := 0
	select {
	case <-ctx.Done():
		// config file is modified, schema is upgraded or signaled.
		e.Logger.Infof("context has been done: %s, cause: %s", ctx.Err(), context.Cause(ctx))
		exit = 1
	case err := <-ch:
		if err != nil {
			e.Logger.Error("server stops with error:", err)
			exit = 1
		}
	}

	e.Logger.Info("shutting down...")
	qctx, qcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer qcancel()
	if err := e.Shutdown(qctx); err != nil {
		e.Logger.Errorf("Shutdown with error. %+v", err)
		exit = 1
	}
	if err := printer.Close(); err != nil {
		e.Logger.Warnf("browser is not closed cleanly: %s", err)
	}
	apt.Close()
	os.Exit(exit)
}
