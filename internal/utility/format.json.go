package utility

import (
	"bytes"
	"encoding/json"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// ResponseType adalah bentuk amplop respons API
type ResponseType struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
}

// Payload membangun map respons dengan status, data, dan pesan
func Payload(isSuccess bool, data interface{}, message string, statusCode ...int) map[string]interface{} {
	response := ResponseType{
		Status:  "error",
		Data:    data,
		Message: message,
		Code:    common.StatusInternalServerError,
	}

	if isSuccess {
		response.Status = "success"
		response.Code = common.StatusOK
	}

	if len(statusCode) > 0 {
		response.Code = statusCode[0]
	}

	result := make(map[string]interface{})
	result["status"] = response.Status
	result["data"] = response.Data
	result["message"] = response.Message
	result["code"] = response.Code

	return result
}

// FinalResponse membangun respons akhir dari hasil operasi dan errornya
func FinalResponse(result interface{}, err error) map[string]interface{} {
	if err != nil {
		if customErr, ok := err.(*common.Error); ok {
			return Payload(false, customErr, customErr.Message, customErr.StatusCode)
		}
		return Payload(false, common.NewError(common.ErrCodeDatabaseConnection, common.MsgDatabaseError, common.StatusInternalServerError, err), common.MsgDatabaseError)
	}
	return Payload(true, result, common.MsgSuccess, common.StatusOK)
}

// Convert2Struct mendekode JSON menjadi struct. Angka dibaca sebagai
// json.Number agar int64 besar tidak kehilangan presisi.
// Mengembalikan nil bila berhasil, atau map respons error bila gagal.
func Convert2Struct(data []byte, myStruct interface{}) map[string]interface{} {
	reader := bytes.NewReader(data)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(&myStruct); err != nil {
		return Payload(false, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err), common.MsgInvalidFormat)
	}

	return nil
}

// ValidateStruct menjalankan validator terhadap struct.
// Mengembalikan nil bila valid, atau map respons error bila tidak.
func ValidateStruct(myStruct interface{}) map[string]interface{} {
	if err := global.Validate.Struct(myStruct); err != nil {
		return Payload(false, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err), common.MsgValidationError)
	}

	return nil
}

// CreateChangeMap membangun map perubahan $set dari struct
func CreateChangeMap(myStruct interface{}, myChange *map[string]interface{}) map[string]interface{} {
	customBson := &CustomBson{}
	change, err := customBson.Set(myStruct)
	if err != nil {
		return Payload(false, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err), common.MsgValidationError)
	}

	*myChange = change
	return nil
}

// P2Float64 mengubah json.Number menjadi float64 (0 bila gagal)
func P2Float64(input interface{}) float64 {
	jsonNumber, ok := input.(json.Number)
	if !ok {
		return 0
	}
	number, err := jsonNumber.Float64()
	if err != nil {
		return 0
	}

	return number
}

// P2Int64 mengubah json.Number menjadi int64 (0 bila gagal)
func P2Int64(input interface{}) int64 {
	jsonNumber, ok := input.(json.Number)
	if !ok {
		return 0
	}
	result, err := jsonNumber.Int64()
	if err != nil {
		return 0
	}

	return result
}
