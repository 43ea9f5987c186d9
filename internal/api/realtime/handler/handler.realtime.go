// Package realtimehdl memuat handler SSE umpan realtime.
package realtimehdl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	realtimesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/realtime/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// heartbeatInterval adalah jarak antar komentar heartbeat SSE
const heartbeatInterval = 15 * time.Second

// RealtimeHandler menangani langganan SSE per collection
type RealtimeHandler struct {
	hub *realtimesvc.Hub
}

// NewRealtimeHandler membuat RealtimeHandler baru
func NewRealtimeHandler() *RealtimeHandler {
	return &RealtimeHandler{hub: realtimesvc.GetHub()}
}

// publicCollections mengembalikan daftar collection yang boleh
// dilanggankan publik beserta urutan snapshot-nya. Collection berisi
// data sensitif (pengguna, pesan kontak, buku besar media) tidak pernah
// masuk daftar ini.
func publicCollections() map[string]bson.D {
	names := global.MongoDB_ColNames
	return map[string]bson.D{
		names.PerangkatDesa:     {{Key: "level", Value: 1}, {Key: "posisi", Value: 1}, {Key: "nama", Value: 1}},
		names.StatistikPenduduk: nil,
		names.Berita:            {{Key: "tanggal", Value: -1}},
		names.Galeri:            {{Key: "tanggal", Value: -1}},
		names.Wisata:            {{Key: "rating", Value: -1}, {Key: "nama", Value: 1}},
		names.Umkm:              {{Key: "nama", Value: 1}},
		names.KearifanLokal:     {{Key: "nama", Value: 1}},
		names.ChatbotFaq:        {{Key: "faqId", Value: 1}},
		names.ChatbotSurat:      {{Key: "suratId", Value: 1}},
	}
}

// HandleSubscribe membuka satu stream SSE untuk sebuah collection.
// Saat tersambung, client menerima event snapshot berisi daftar terurut
// saat ini, lalu satu event per perubahan data, diselingi komentar
// heartbeat agar koneksi tetap hidup.
func (h *RealtimeHandler) HandleSubscribe(c fiber.Ctx) error {
	collectionName := c.Params("collection")

	sorts := publicCollections()
	sort, allowed := sorts[collectionName]
	if !allowed {
		basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeAuthRole, "Collection ini tidak tersedia untuk langganan realtime", common.StatusForbidden, nil))
		return nil
	}

	collection, exist := global.RegistryCollections.Get(collectionName)
	if !exist {
		basehdl.HandleResponse(c, nil, common.ErrNotFound)
		return nil
	}

	// Snapshot diambil sebelum stream dimulai supaya kegagalan query
	// masih bisa dibalas sebagai error HTTP biasa
	snapshotCtx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	findOpts := options.Find()
	if len(sort) > 0 {
		findOpts.SetSort(sort)
	}
	cursor, err := collection.Find(snapshotCtx, bson.M{}, findOpts)
	if err != nil {
		basehdl.HandleResponse(c, nil, common.ConvertMongoError(err))
		return nil
	}
	items := []bson.M{}
	if err := cursor.All(snapshotCtx, &items); err != nil {
		basehdl.HandleResponse(c, nil, common.ConvertMongoError(err))
		return nil
	}

	sub := h.hub.Subscribe(collectionName)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.RequestCtx().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer h.hub.Unsubscribe(sub)

		if err := writeSSE(w, "snapshot", map[string]interface{}{
			"collection": collectionName,
			"items":      items,
		}); err != nil {
			return
		}

		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()

		for {
			select {
			case e, ok := <-sub.Events:
				if !ok {
					return
				}
				if err := writeSSE(w, e.Operation, map[string]interface{}{
					"collection": e.CollectionName,
					"operation":  e.Operation,
					"document":   e.Document,
				}); err != nil {
					return
				}
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})

	logrus.WithFields(logrus.Fields{"collection": collectionName}).Debug("HandleSubscribe: pelanggan realtime baru tersambung")
	return nil
}

// writeSSE menulis satu event SSE lengkap dan langsung flush
func writeSSE(w *bufio.Writer, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}

// RegisterBridge memastikan hub terdaftar ke bus event perubahan data.
// Dipanggil sekali saat bootstrap.
func RegisterBridge() {
	realtimesvc.GetHub()
}
