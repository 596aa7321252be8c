package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	zlog "github.com/rs/zerolog/log"

	"github.com/finsight/dashboard/backend"
	"github.com/finsight/dashboard/internal/config"
	"github.com/finsight/dashboard/server"
	"github.com/finsight/dashboard/session"
	"github.com/finsight/dashboard/session/filerepo"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running dashboard: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Dashboard stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	credentialsRepo, err := filerepo.New(c.GetDataFolder(), c.GetCredentialsKey())
	if err != nil {
		return fmt.Errorf("filerepo.New: %w", err)
	}

	// Session state is settled synchronously here, before any route is served
	store := session.NewStore(credentialsRepo)
	cancel := store.Subscribe(func(s session.Session) {
		zlog.Info().Bool("authenticated", s.IsAuthenticated()).Msg("session state changed")
	})
	defer cancel()

	api := backend.New(c, backend.NewStoreTokenSource(store))

	httpServer := &http.Server{Addr: c.GetPort(), Handler: server.New(c, store, api)}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func listenAndServe(server *http.Server) error {
	log.Printf("Dashboard listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
