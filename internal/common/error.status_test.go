package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorIs_MatchesByCodeAndMessage(t *testing.T) {
	if !errors.Is(ErrNotFound, ErrNotFound) {
		t.Error("ErrNotFound harus cocok dengan dirinya sendiri")
	}
	if errors.Is(ErrNotFound, ErrDuplicate) {
		t.Error("ErrNotFound tidak boleh cocok dengan ErrDuplicate")
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, harusnya nil", got)
	}
}

func TestConvertMongoError_PreservesNotFound(t *testing.T) {
	// ErrNotFound sudah bagian dari taksonomi, tidak boleh dibungkus ulang
	got := ConvertMongoError(ErrNotFound)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ConvertMongoError(ErrNotFound) = %v, harusnya tetap ErrNotFound", got)
	}
}

func TestConvertMongoError_CommandError(t *testing.T) {
	cases := []struct {
		code int32
		want error
	}{
		{150, ErrMongoConnection},
		{250, ErrMongoAuth},
		{350, ErrMongoQuery},
		{450, ErrMongoWrite},
		{550, ErrMongoSystem},
	}
	for _, c := range cases {
		err := mongo.CommandError{Code: c.code, Message: "x"}
		got := ConvertMongoError(err)
		if !errors.Is(got, c.want) {
			t.Errorf("ConvertMongoError(code=%d) = %v, harusnya %v", c.code, got, c.want)
		}
	}
}

func TestConvertMongoError_Unknown(t *testing.T) {
	got := ConvertMongoError(fmt.Errorf("kesalahan tak dikenal"))
	var appErr *Error
	if !errors.As(got, &appErr) {
		t.Fatalf("ConvertMongoError harus mengembalikan *Error, dapat %T", got)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode = %d, harusnya %d", appErr.StatusCode, StatusInternalServerError)
	}
	if appErr.Code.Code != ErrCodeDatabase.Code {
		t.Errorf("Code = %s, harusnya %s", appErr.Code.Code, ErrCodeDatabase.Code)
	}
}

func TestNewError_CarriesDetails(t *testing.T) {
	details := map[string]string{"field": "email"}
	err := NewError(ErrCodeValidationInput, "Data tidak valid", StatusBadRequest, details)

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("NewError harus mengembalikan *Error")
	}
	if appErr.Error() != "Data tidak valid" {
		t.Errorf("Error() = %q", appErr.Error())
	}
	if appErr.Details == nil {
		t.Error("Details hilang")
	}
}
