package utility

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// transformTagConfig menampung hasil parse tag `transform` pada DTO
type transformTagConfig struct {
	Type     string // Jenis transform: str_objectid, str_objectid_ptr, str_time, str_int64, str_bool, str_number
	Format   string // Format waktu untuk str_time
	Default  string // Nilai default
	Optional bool   // Bila tidak ada nilai, lewati
	Required bool   // Nilai wajib ada
	MapTo    string // Nama field tujuan di Model bila berbeda (map=NamaField)
}

// ParseTransformTag mem-parse tag transform menjadi konfigurasi.
// Format: "[type][,format=<nilai>][,default=<nilai>][,optional|required][,map=<Field>]"
// Konvensi nama type: <tipe_masukan>_<tipe_keluaran>
// Contoh:
//   - transform:"str_objectid" — string → primitive.ObjectID
//   - transform:"str_time,format=2006-01-02" — string → timestamp milidetik
//   - transform:"str_objectid,optional" — field opsional
func ParseTransformTag(tag string) (*transformTagConfig, error) {
	config := &transformTagConfig{
		Type:   "",
		Format: "2006-01-02T15:04:05",
	}

	if tag == "" {
		return config, nil
	}

	parts := strings.Split(tag, ",")
	if len(parts) == 0 {
		return nil, fmt.Errorf("transform tag tidak valid: %s", tag)
	}

	typeStr := strings.TrimSpace(parts[0])
	if typeStr != "" {
		config.Type = typeStr
	}

	for i := 1; i < len(parts); i++ {
		part := strings.TrimSpace(parts[i])
		if part == "" {
			continue
		}

		if part == "optional" {
			config.Optional = true
			continue
		}
		if part == "required" {
			config.Required = true
			continue
		}

		if strings.Contains(part, "=") {
			kv := strings.SplitN(part, "=", 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])
			value := strings.TrimSpace(kv[1])

			switch key {
			case "format":
				config.Format = value
			case "default":
				config.Default = value
			case "map":
				config.MapTo = value
			}
		}
	}

	return config, nil
}

// TransformFieldValue mentransform nilai field DTO menjadi nilai field Model
func TransformFieldValue(value interface{}, config *transformTagConfig, targetFieldType reflect.Type) (interface{}, error) {
	if value == nil {
		if config.Default != "" {
			return applyTransform(config.Default, config, targetFieldType)
		}
		if config.Optional {
			return nil, nil
		}
		if config.Required {
			return nil, fmt.Errorf("field wajib diisi tetapi tidak ada nilai")
		}
		return nil, nil
	}

	if strValue, ok := value.(string); ok {
		if strValue == "" {
			if config.Default != "" {
				return applyTransform(config.Default, config, targetFieldType)
			}
			if config.Optional {
				return nil, nil
			}
			if config.Required {
				return nil, fmt.Errorf("field wajib diisi tetapi nilainya kosong")
			}
			return nil, nil
		}
	}

	return applyTransform(value, config, targetFieldType)
}

// applyTransform menjalankan transform sesuai jenisnya
func applyTransform(value interface{}, config *transformTagConfig, targetFieldType reflect.Type) (interface{}, error) {
	switch config.Type {
	case "str_objectid":
		return transformToObjectID(value)
	case "str_objectid_ptr":
		return transformToObjectIDPtr(value)
	case "str_time":
		return transformToTime(value, config.Format)
	case "str_number":
		return transformToNumber(value)
	case "str_int64":
		return transformToInt64(value)
	case "str_bool":
		return transformToBool(value)
	case "":
		fallthrough
	default:
		// Tanpa transform: kembalikan nilai apa adanya
		return value, nil
	}
}

func transformToObjectID(value interface{}) (primitive.ObjectID, error) {
	if value == nil {
		return primitive.NilObjectID, nil
	}

	strValue, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("nilai bukan string: %T", value)
	}

	if strValue == "" {
		return primitive.NilObjectID, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("tidak bisa mengubah string '%s' menjadi ObjectID: %w", strValue, err)
	}

	return objID, nil
}

func transformToObjectIDPtr(value interface{}) (*primitive.ObjectID, error) {
	if value == nil {
		return nil, nil
	}

	strValue, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("nilai bukan string: %T", value)
	}

	if strValue == "" {
		return nil, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return nil, fmt.Errorf("tidak bisa mengubah string '%s' menjadi ObjectID: %w", strValue, err)
	}

	return &objID, nil
}

func transformToTime(value interface{}, format string) (int64, error) {
	if value == nil {
		return 0, nil
	}

	strValue, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("nilai bukan string: %T", value)
	}

	if strValue == "" {
		return 0, nil
	}

	t, err := time.Parse(format, strValue)
	if err != nil {
		return 0, fmt.Errorf("tidak bisa mem-parse waktu '%s' dengan format '%s': %w", strValue, format, err)
	}

	return t.UnixMilli(), nil
}

func transformToNumber(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case string:
		if intVal, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intVal, nil
		}
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal, nil
		}
		return v, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v == float64(int64(v)) {
			return int64(v), nil
		}
		return v, nil
	default:
		return fmt.Sprintf("%v", value), nil
	}
}

func transformToInt64(value interface{}) (int64, error) {
	if value == nil {
		return 0, nil
	}

	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("tidak bisa mengubah %T menjadi int64", value)
	}
}

func transformToBool(value interface{}) (bool, error) {
	if value == nil {
		return false, nil
	}

	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("tidak bisa mengubah %T menjadi bool", value)
	}
}
