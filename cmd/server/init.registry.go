package main

import (
	"reflect"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mirzasnowy/desa-medalsari-sub000/config"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// InitRegistry menginisialisasi registry dan mendaftarkan seluruh collection
func InitRegistry() {
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections mendaftarkan seluruh collection MongoDB ke registry global.
// Daftar nama diambil dari global.MongoDB_ColNames lewat refleksi supaya
// collection baru cukup ditambahkan di satu tempat (initColNames).
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	v := reflect.ValueOf(global.MongoDB_ColNames)
	for i := 0; i < v.NumField(); i++ {
		name := v.Field(i).String()

		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Warnf("Collection %s already registered", name)
		}
	}

	return nil
}
