package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	realtimehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/realtime/handler"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/database"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/logger"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/worker"
)

// initLogger menginisialisasi logger untuk seluruh aplikasi
func initLogger() {
	// Logger membaca environment variables sendiri untuk konfigurasinya
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread menginisialisasi dan menjalankan server Fiber
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Graceful shutdown: tunggu SIGINT/SIGTERM, tutup server lalu koneksi Mongo
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan

		log.WithFields(map[string]interface{}{
			"signal": sig.String(),
		}).Info("Shutdown signal received, stopping server...")

		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error during server shutdown")
		}
		if err := database.CloseInstance(global.MongoDB_Session); err != nil {
			log.WithError(err).Error("Error closing MongoDB connection")
		}
	}()

	// resolvePath mencari path relatif dari akar proyek (direktori yang memuat config/env)
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Fungsi main
func main() {
	// Inisialisasi logger
	initLogger()

	// Inisialisasi variabel global (config, database, firebase)
	InitGlobal()

	// Inisialisasi registry collection
	InitRegistry()

	// Inisialisasi data awal
	InitDefaultData()

	// Daftarkan hub realtime ke bus event perubahan data sebelum ada
	// request pertama, supaya tidak ada event yang hilang
	realtimehdl.RegisterBridge()

	// Jalankan worker penyapu unggahan yatim di goroutine terpisah
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig
	sweeper, err := worker.NewMediaSweepWorker(
		time.Duration(cfg.MediaSweepInterval)*time.Second,
		time.Duration(cfg.MediaOrphanAgeHours)*time.Hour,
	)
	if err != nil {
		log.WithError(err).Error("Failed to create media sweep worker, continuing without sweeper")
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic": r,
					}).Error("[MEDIA_SWEEP] Worker goroutine panic")
				}
			}()
			sweeper.Start(ctx)
		}()

		log.Info("[MEDIA_SWEEP] Media sweep worker started successfully")
	}

	// Jalankan server Fiber di main thread
	main_thread()
}
