package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cdidc/internal/cli"
	"cdidc/internal/discid"
	"cdidc/internal/identify"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], cli.Env{
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Getenv:         os.Getenv,
		OpenDisc:       openDisc,
		DefaultDevice:  discid.DefaultDevice,
		LibraryVersion: discid.Version,
	})
	stop()
	os.Exit(code)
}

func openDisc() (identify.Disc, error) {
	disc, err := discid.New()
	if err != nil {
		return nil, err
	}
	return disc, nil
}
