package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/events"
	"jobsift-engine/internal/httpapi"
	"jobsift-engine/internal/scheduler"
	"jobsift-engine/internal/store"
)

func main() {
	// Engine data dir: env wins, else a local folder.
	dataDir := os.Getenv("JOBSIFT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		normalized, vr := config.NormalizeAndValidate(cfg)
		for _, warning := range vr.Warnings {
			log.Printf("level=warn msg=\"config\" detail=%q", warning)
		}
		if !vr.OK() {
			return cfg, fmt.Errorf("config invalid: %v", vr.Errors)
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	archivePath := filepath.Join(dataDir, "jobsift.db")
	archive, err := store.Open(archivePath)
	if err != nil {
		log.Fatalf("archive open failed (%s): %v", archivePath, err)
	}
	defer archive.Close()

	hub := events.NewHub()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Periodic archive cleanup, interval independent of the retention window.
	go scheduler.Every(ctx, 12*time.Hour, "cleanup", func(ctx context.Context) error {
		days := cfgVal.Load().(config.Config).Archive.CleanupDays
		deleted, err := archive.CleanupOld(ctx, days)
		if err != nil {
			return err
		}
		if deleted > 0 {
			log.Printf("level=info msg=\"cleanup\" deleted=%d", deleted)
			hub.Publish(events.CleanupDone(deleted))
		}
		return nil
	})

	mux := httpapi.NewMux(httpapi.Deps{
		Archive:     archive,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Workers:     8,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (archive=%s)", addr, archivePath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
