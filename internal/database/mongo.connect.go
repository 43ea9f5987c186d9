package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mirzasnowy/desa-medalsari-sub000/config"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetInstance menginisialisasi dan mengembalikan objek *mongo.Client.
// Fungsi ini memakai URI koneksi dari konfigurasi yang diberikan.
//
// Parameter:
// - c: Pointer ke objek config.Configuration berisi informasi konfigurasi.
//
// Mengembalikan:
// - *mongo.Client: Klien MongoDB yang sudah terhubung.
//
// Catatan:
// - Fungsi mencatat dan mengembalikan error bila koneksi atau pengecekan koneksi gagal.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	// Atur opsi klien
	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                 // Maksimum 50 koneksi
		SetMinPoolSize(10).                 // Minimum 10 koneksi di pool
		SetConnectTimeout(5 * time.Second). // Timeout saat membuka koneksi
		SetSocketTimeout(10 * time.Second)  // Timeout kirim/terima data

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Pastikan koneksi hidup
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	err = client.Ping(ctxPing, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance menutup koneksi klien MongoDB.
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
