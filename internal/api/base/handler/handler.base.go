// Package basehdl memuat handler HTTP dasar untuk aplikasi.
// Package ini menyediakan fungsi CRUD generik dan utilitas parse request/response.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/utility"
)

// FilterOptions mengatur validasi filter dari query string
type FilterOptions struct {
	DeniedFields     []string // Field yang dilarang di-filter
	AllowedOperators []string // Operator MongoDB yang diizinkan
	MaxFields        int      // Jumlah maksimum field dalam satu filter
}

// BaseHandler adalah handler dasar untuk Fiber yang menyediakan operasi CRUD generik.
//
// Type parameter:
// - T: tipe model
// - CreateInput: tipe DTO saat membuat data baru
// - UpdateInput: tipe DTO saat memperbarui data
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service yang menangani logika MongoDB
	filterOptions FilterOptions               // Konfigurasi validasi filter
	defaultSort   bson.D                      // Sort bawaan bila client tidak mengirim sort
}

// NewBaseHandler membuat BaseHandler baru dengan BaseService yang diberikan
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"salt",
				"token",
				"tokens",
				"secret",
				"key",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// SetDefaultSort mengatur urutan bawaan hasil query bila client
// tidak mengirim sort pada parameter options.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetDefaultSort(sort bson.D) {
	h.defaultSort = sort
}

// validateInput memvalidasi data masukan secara rinci
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateInput(input interface{}) error {
	// Validasi dengan validator global
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	// Periksa field khusus
	val := reflect.ValueOf(input)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	// Hanya diproses bila input berupa struct
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Field string: periksa panjang maksimum (tag maxLength)
		if field.Kind() == reflect.String {
			if maxTag := fieldType.Tag.Get("maxLength"); maxTag != "" {
				maxLen, err := strconv.Atoi(maxTag)
				if err == nil && len(field.String()) > maxLen {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Field %s melebihi panjang yang diizinkan (%d karakter)", fieldType.Name, maxLen),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}

		// Field angka: periksa nilai minimum dan maksimum (tag min/max)
		if field.Kind() == reflect.Int || field.Kind() == reflect.Int64 {
			if minTag := fieldType.Tag.Get("min"); minTag != "" {
				min, err := strconv.ParseInt(minTag, 10, 64)
				if err == nil && field.Int() < min {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Field %s harus lebih besar atau sama dengan %d", fieldType.Name, min),
						common.StatusBadRequest,
						nil,
					)
				}
			}

			if maxTag := fieldType.Tag.Get("max"); maxTag != "" {
				max, err := strconv.ParseInt(maxTag, 10, 64)
				if err == nil && field.Int() > max {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Field %s harus lebih kecil atau sama dengan %d", fieldType.Name, max),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// ParseRequestBody mem-parse dan memvalidasi data dari request body.
// Menggunakan json.Decoder dengan UseNumber() agar angka ditangani akurat.
//
// Parameter:
// - c: Fiber context
// - input: pointer ke struct penampung hasil parse
//
// Mengembalikan:
// - error: error parse atau validasi
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	// DTO yang punya normalisasi sendiri (mis. buang item array kosong)
	// dinormalkan dulu sebelum divalidasi
	if n, ok := input.(interface{ Normalize() }); ok {
		n.Normalize()
	}

	if err := h.validateInput(input); err != nil {
		return err
	}

	return nil
}

// ParseRequestQuery mem-parse dan memvalidasi data dari query string.
// Query string harus berupa JSON yang di-encode.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestQuery(c fiber.Ctx, input interface{}) error {
	query := c.Query("query", "")

	reader := bytes.NewReader([]byte(query))
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// ParseRequestParams mem-parse dan memvalidasi parameter dari URI
// menggunakan URI binding milik Fiber.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestParams(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().URI(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// ProcessFilter memproses dan memvalidasi filter dari request
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter bukan JSON yang valid. Detail: %v. Filter yang diterima: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Normalisasi: ubah string ObjectId menjadi primitive.ObjectID
	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter mengubah string ber-format ObjectId menjadi ObjectID pada filter.
// Berlaku untuk field yang namanya berakhiran "Id" atau "ID".
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2

		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}

	return normalized
}

// normalizeFilterValue mengubah nilai dalam filter, mendukung struktur bersarang
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if value == nil {
		return value
	}

	// Dukung MongoDB Extended JSON: {"$oid": "..."}
	if mapValue, ok := value.(map[string]interface{}); ok {
		if oidValue, hasOid := mapValue["$oid"]; hasOid {
			if oidStr, ok := oidValue.(string); ok {
				if primitive.IsValidObjectID(oidStr) {
					objID, err := primitive.ObjectIDFromHex(oidStr)
					if err == nil {
						return objID
					}
				}
			}
			// $oid tidak valid: kembalikan nilai asli
			return value
		}
	}

	// String pada field ID: coba konversi menjadi ObjectID
	if strValue, ok := value.(string); ok && isIDField {
		if primitive.IsValidObjectID(strValue) {
			objID, err := primitive.ObjectIDFromHex(strValue)
			if err == nil {
				return objID
			}
		}
		return strValue
	}

	// Array: proses tiap elemen
	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	// Map (operator $in, $nin, $eq, dst.): proses rekursif
	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{})
		for key, val := range mapValue {
			// $in/$nin pada field ID: nilai dalam array dikonversi satu-satu
			if (key == "$in" || key == "$nin") && isIDField {
				if arrVal, ok := val.([]interface{}); ok {
					normalizedArr := make([]interface{}, len(arrVal))
					for i, item := range arrVal {
						if strItem, ok := item.(string); ok && primitive.IsValidObjectID(strItem) {
							objID, err := primitive.ObjectIDFromHex(strItem)
							if err == nil {
								normalizedArr[i] = objID
							} else {
								normalizedArr[i] = item
							}
						} else {
							normalizedArr[i] = item
						}
					}
					normalizedMap[key] = normalizedArr
				} else {
					normalizedMap[key] = val
				}
			} else {
				normalizedMap[key] = h.normalizeFilterValue(val, isIDField)
			}
		}
		return normalizedMap
	}

	return value
}

// validateFilter memeriksa kevalidan filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	deniedFields := h.filterOptions.DeniedFields
	if len(deniedFields) == 0 {
		deniedFields = []string{
			"password",
			"salt",
			"token",
			"tokens",
			"secret",
			"key",
			"hash",
		}
	}

	allowedOperators := h.filterOptions.AllowedOperators
	if len(allowedOperators) == 0 {
		allowedOperators = []string{
			"$eq",
			"$gt",
			"$gte",
			"$lt",
			"$lte",
			"$in",
			"$nin",
			"$exists",
		}
	}

	maxFields := h.filterOptions.MaxFields
	if maxFields == 0 {
		maxFields = 10
	}

	// Periksa jumlah field
	if len(filter) > maxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter melebihi jumlah field yang diizinkan. Maksimum %d field, saat ini %d field.", maxFields, len(filter)),
			common.StatusBadRequest,
			nil,
		)
	}

	// Periksa setiap field dan operatornya
	for field, value := range filter {
		if utility.Contains(deniedFields, field) {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Field '%s' tidak boleh dipakai dalam filter karena alasan keamanan.", field),
				common.StatusBadRequest,
				nil,
			)
		}

		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if strings.HasPrefix(op, "$") && !utility.Contains(allowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationFormat,
						fmt.Sprintf("Operator MongoDB '%s' tidak diizinkan. Operator yang diizinkan: %v", op, allowedOperators),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// processMongoOptions memproses options dari query string menjadi options MongoDB
func (h *BaseHandler[T, CreateInput, UpdateInput]) processMongoOptions(c fiber.Ctx, isFindOne bool) (interface{}, error) {
	var rawOptions map[string]interface{}

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &rawOptions); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options bukan JSON yang valid. Detail: %v. Options yang diterima: %s", err, optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	if err := h.validateMongoOptions(rawOptions); err != nil {
		return nil, err
	}

	// Fallback: parse sort dari map biasa (urutan key tidak terjamin)
	parseSortMap := func(sortMap map[string]interface{}) bson.D {
		sortBson := bson.D{}
		for field, value := range sortMap {
			var sortValue int
			if v, ok := value.(float64); ok {
				sortValue = int(v)
			} else if v, ok := value.(int); ok {
				sortValue = v
			} else {
				continue
			}
			if sortValue != 1 && sortValue != -1 {
				continue
			}
			sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
		}
		return sortBson
	}

	// Parse sort dengan mempertahankan urutan key dari JSON asli.
	// Map Go tidak menjaga urutan, jadi sort dibaca ulang lewat json.Decoder Token().
	parseSortWithOrder := func(sortMap map[string]interface{}, optionsJSON string) (bson.D, error) {
		sortBson := bson.D{}

		var tempOptions map[string]json.RawMessage
		if err := json.Unmarshal([]byte(optionsJSON), &tempOptions); err != nil {
			return parseSortMap(sortMap), nil
		}

		sortRaw, ok := tempOptions["sort"]
		if !ok {
			return sortBson, nil
		}

		decoder := json.NewDecoder(bytes.NewReader(sortRaw))
		decoder.UseNumber()

		// Token '{'
		token, err := decoder.Token()
		if err != nil || token != json.Delim('{') {
			return parseSortMap(sortMap), nil
		}

		// Baca pasangan key-value sesuai urutan di JSON
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				break
			}
			field, ok := keyToken.(string)
			if !ok {
				continue
			}

			valueToken, err := decoder.Token()
			if err != nil {
				break
			}

			var sortValue int
			switch v := valueToken.(type) {
			case json.Number:
				intVal, err := v.Int64()
				if err != nil {
					floatVal, err := v.Float64()
					if err != nil {
						continue
					}
					intVal = int64(floatVal)
				}
				sortValue = int(intVal)
			case float64:
				sortValue = int(v)
			case int:
				sortValue = v
			default:
				continue
			}

			// Hanya 1 atau -1 yang diterima
			if sortValue != 1 && sortValue != -1 {
				continue
			}

			sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
		}

		// Token '}'
		_, _ = decoder.Token()

		if len(sortBson) == 0 {
			return parseSortMap(sortMap), nil
		}

		return sortBson, nil
	}

	if isFindOne {
		opts := mongoopts.FindOne()
		if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
			opts.SetProjection(projection)
		}
		if sort, ok := rawOptions["sort"].(map[string]interface{}); ok {
			sortBson, err := parseSortWithOrder(sort, optionsStr)
			if err != nil {
				return nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Gagal mem-parse sort options: %v", err),
					common.StatusBadRequest,
					err,
				)
			}
			opts.SetSort(sortBson)
		} else if len(h.defaultSort) > 0 {
			opts.SetSort(h.defaultSort)
		}
		return opts, nil
	}

	opts := mongoopts.Find()
	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if sort, ok := rawOptions["sort"].(map[string]interface{}); ok {
		sortBson, err := parseSortWithOrder(sort, optionsStr)
		if err != nil {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Gagal mem-parse sort options: %v", err),
				common.StatusBadRequest,
				err,
			)
		}
		opts.SetSort(sortBson)
	} else if len(h.defaultSort) > 0 {
		opts.SetSort(h.defaultSort)
	}
	if limit, ok := rawOptions["limit"].(float64); ok {
		opts.SetLimit(int64(limit))
	}
	if skip, ok := rawOptions["skip"].(float64); ok {
		opts.SetSkip(int64(skip))
	}
	return opts, nil
}

// validateMongoOptions memeriksa kevalidan options
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateMongoOptions(options map[string]interface{}) error {
	deniedFields := h.filterOptions.DeniedFields
	if len(deniedFields) == 0 {
		deniedFields = []string{
			"password",
			"salt",
			"token",
			"tokens",
			"secret",
			"key",
			"hash",
		}
	}

	// Options yang didukung
	allowedOptions := map[string]bool{
		"projection": true,
		"sort":       true,
		"limit":      true,
		"skip":       true,
	}

	for key := range options {
		if !allowedOptions[key] {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Option '%s' tidak didukung. Options yang diizinkan: projection, sort, limit, skip", key),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	// Validasi projection
	if projection, ok := options["projection"].(map[string]interface{}); ok {
		for field := range projection {
			if utility.Contains(deniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Field '%s' tidak boleh dipakai dalam projection karena alasan keamanan", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	// Validasi sort
	if sort, ok := options["sort"].(map[string]interface{}); ok {
		for field, value := range sort {
			if utility.Contains(deniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Field '%s' tidak boleh dipakai dalam sort karena alasan keamanan", field),
					common.StatusBadRequest,
					nil,
				)
			}
			if v, ok := value.(float64); !ok || (v != 1 && v != -1) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Nilai sort untuk field '%s' harus 1 (naik) atau -1 (turun), nilai saat ini: %v", field, value),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	// Validasi limit
	if limit, ok := options["limit"].(float64); ok {
		if limit <= 0 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Nilai limit harus lebih besar dari 0",
				common.StatusBadRequest,
				nil,
			)
		}
		if limit > 1000 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Nilai limit tidak boleh melebihi 1000 demi menjaga performa sistem",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	// Validasi skip
	if skip, ok := options["skip"].(float64); ok {
		if skip < 0 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Nilai skip tidak boleh negatif",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	return nil
}

// ParsePagination mem-parse informasi paginasi dari request.
// Parameter yang didukung:
// - page: nomor halaman (default: 1)
// - limit: jumlah item per halaman (default: 10)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page := utility.P2Int64(c.Query("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit := utility.P2Int64(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	return page, limit
}

// GetIDFromContext mengambil ID dari URI params request
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) string {
	return c.Params("id")
}

// TransformCreateInputToModel mentransform CreateInput (DTO) menjadi Model (T).
// Memanfaatkan struct tag `transform` untuk konversi otomatis (mis. string → ObjectID).
// Mendukung pemetaan nama field yang berbeda lewat option `map=<NamaField>`.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	model := new(T)
	if err := transformInputToModel(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// TransformUpdateInputToModel mentransform UpdateInput (DTO) menjadi Model (T)
// dengan aturan yang sama seperti TransformCreateInputToModel.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (*T, error) {
	model := new(T)
	if err := transformInputToModel(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// transformInputToModel menyalin field DTO ke model sesuai tag transform
func transformInputToModel(input interface{}, model interface{}) error {
	inputVal := reflect.ValueOf(input)
	if inputVal.Kind() == reflect.Ptr {
		inputVal = inputVal.Elem()
	}
	if inputVal.Kind() != reflect.Struct {
		return fmt.Errorf("input harus berupa struct atau pointer ke struct")
	}

	modelVal := reflect.ValueOf(model)
	if modelVal.Kind() == reflect.Ptr {
		modelVal = modelVal.Elem()
	}
	if modelVal.Kind() != reflect.Struct {
		return fmt.Errorf("model harus berupa struct atau pointer ke struct")
	}

	inputType := inputVal.Type()
	modelType := modelVal.Type()

	for i := 0; i < inputVal.NumField(); i++ {
		inputField := inputVal.Field(i)
		inputFieldType := inputType.Field(i)

		// Lewati field yang tidak di-export
		if !inputField.CanInterface() {
			continue
		}

		fieldValue := inputField.Interface()

		transformTag := inputFieldType.Tag.Get("transform")
		if transformTag != "" {
			transformConfig, err := utility.ParseTransformTag(transformTag)
			if err != nil {
				return fmt.Errorf("gagal mem-parse transform tag pada field %s: %w", inputFieldType.Name, err)
			}

			// Tentukan field tujuan di model
			targetFieldName := inputFieldType.Name
			if transformConfig.MapTo != "" {
				targetFieldName = transformConfig.MapTo
			}

			modelField, found := modelType.FieldByName(targetFieldName)
			if !found {
				if transformConfig.Optional {
					continue
				}
				return fmt.Errorf("field '%s' tidak ditemukan di model (dipetakan dari field '%s' di DTO)", targetFieldName, inputFieldType.Name)
			}

			transformedValue, err := utility.TransformFieldValue(fieldValue, transformConfig, modelField.Type)
			if err != nil {
				if transformConfig.Optional {
					continue
				}
				return fmt.Errorf("gagal mentransform field '%s' ke '%s': %w", inputFieldType.Name, targetFieldName, err)
			}

			modelFieldVal := modelVal.FieldByName(targetFieldName)
			if !modelFieldVal.IsValid() || !modelFieldVal.CanSet() {
				return fmt.Errorf("tidak bisa mengisi field '%s' di model", targetFieldName)
			}

			if transformedValue != nil {
				transformedVal := reflect.ValueOf(transformedValue)
				if transformedVal.Type().AssignableTo(modelFieldVal.Type()) {
					modelFieldVal.Set(transformedVal)
				} else if transformedVal.Type().ConvertibleTo(modelFieldVal.Type()) {
					modelFieldVal.Set(transformedVal.Convert(modelFieldVal.Type()))
				} else {
					return fmt.Errorf("tidak bisa mengonversi nilai dari tipe %v ke tipe %v untuk field '%s'", transformedVal.Type(), modelFieldVal.Type(), targetFieldName)
				}
			}
			// Optional dengan nilai nil: biarkan zero value
		} else {
			// Tanpa tag transform: salin langsung bila nama sama dan tipe cocok
			targetFieldName := inputFieldType.Name
			_, found := modelType.FieldByName(targetFieldName)
			if !found {
				continue
			}

			modelFieldVal := modelVal.FieldByName(targetFieldName)
			if !modelFieldVal.IsValid() || !modelFieldVal.CanSet() {
				continue
			}

			inputValReflect := reflect.ValueOf(fieldValue)
			if inputValReflect.Type().AssignableTo(modelFieldVal.Type()) {
				modelFieldVal.Set(inputValReflect)
			} else if inputValReflect.Type().ConvertibleTo(modelFieldVal.Type()) {
				modelFieldVal.Set(inputValReflect.Convert(modelFieldVal.Type()))
			}
			// Tipe tidak cocok: lewati (mungkin butuh tag transform)
		}
	}

	return nil
}
