package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
)

// JSONResponse mengirim response JSON dengan Content-Type: application/json; charset=utf-8.
// Charset utf-8 wajib agar konten berbahasa Indonesia ter-encode benar.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler membungkus handler dengan recover untuk menangkap panic.
// Menjamin server selalu mengirim response ke client, termasuk saat panic.
//
// Parameter:
// - c: Fiber context
// - handler: fungsi utama handler
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Kesalahan sistem yang tidak terduga: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// SafeHandlerWrapper membungkus fungsi handler domain yang tidak meng-embed BaseHandler
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	return nil
}

// HandleResponse menormalkan response yang dikirim ke client.
// Format response seragam untuk seluruh aplikasi.
//
// Parameter:
// - c: Fiber context
// - data: data untuk client (boleh nil bila hanya error)
// - err: error bila ada (nil bila sukses)
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	HandleResponse(c, data, err)
}

// HandleResponse versi fungsi bebas, dipakai handler domain yang tidak
// meng-embed BaseHandler.
func HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}
		// Bukan custom error: kembalikan internal server error
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeDatabase.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
