package basesvc

import (
	"reflect"
	"testing"
)

type dokumenUji struct {
	Judul   string `bson:"judul"`
	Status  string `bson:"status" default:"Draft"`
	Aktif   bool   `bson:"aktif" default:"true"`
	Dilihat int64  `bson:"dilihat"`
	Urutan  int    `bson:"urutan" default:"5"`
	Abaikan string `bson:"-" default:"x"`
}

func TestApplyInsertDefaultsToModel(t *testing.T) {
	doc := &dokumenUji{Judul: "Pembangunan Jalan"}
	applyInsertDefaultsToModel(doc)

	if doc.Status != "Draft" {
		t.Errorf("Status = %q, harusnya %q", doc.Status, "Draft")
	}
	if !doc.Aktif {
		t.Error("Aktif harus true dari tag default")
	}
	if doc.Urutan != 5 {
		t.Errorf("Urutan = %d, harusnya 5", doc.Urutan)
	}
}

func TestApplyInsertDefaultsToModel_NonZeroUntouched(t *testing.T) {
	doc := &dokumenUji{Status: "Published", Urutan: 2}
	applyInsertDefaultsToModel(doc)

	if doc.Status != "Published" {
		t.Errorf("Status yang sudah terisi tertimpa: %q", doc.Status)
	}
	if doc.Urutan != 2 {
		t.Errorf("Urutan yang sudah terisi tertimpa: %d", doc.Urutan)
	}
}

func TestApplyInsertDefaultsToModel_NonPointerNoPanic(t *testing.T) {
	// Bukan pointer: tidak ada efek, dan tidak boleh panic
	applyInsertDefaultsToModel(dokumenUji{})
	applyInsertDefaultsToModel(nil)
}

func TestGetInsertDefaultsFromModelType(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(dokumenUji{}))

	if defaults["status"] != "Draft" {
		t.Errorf("default status = %v, harusnya Draft", defaults["status"])
	}
	if _, ok := defaults["dilihat"]; ok {
		t.Error("field tanpa tag default tidak boleh masuk daftar")
	}
	// Field dengan bson:"-" tidak punya kunci bson yang bisa dipakai
	for key := range defaults {
		if key == "-" || key == "" {
			t.Errorf("kunci bson tidak valid masuk daftar: %q", key)
		}
	}
}

func TestParseDefaultValue(t *testing.T) {
	if got := parseDefaultValue("Draft", reflect.TypeOf("")); got != "Draft" {
		t.Errorf("string = %v", got)
	}
	if got := parseDefaultValue("true", reflect.TypeOf(false)); got != true {
		t.Errorf("bool = %v", got)
	}
	if got := parseDefaultValue("7", reflect.TypeOf(int64(0))); got != int64(7) {
		t.Errorf("int64 = %v", got)
	}
	if got := parseDefaultValue("x", reflect.TypeOf([]string{})); got != nil {
		t.Errorf("tipe tak didukung harus nil, dapat %v", got)
	}
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{"judul": "Baru"})
	if err != nil {
		t.Fatalf("ToUpdateData gagal: %v", err)
	}
	if update.Set == nil || update.Set["judul"] != "Baru" {
		t.Errorf("map biasa harus terbungkus $set, dapat %+v", update)
	}
}

func TestToUpdateData_UpdateDataPassedThrough(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"a": 1}}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData gagal: %v", err)
	}
	if out != in {
		t.Error("*UpdateData harus dikembalikan apa adanya")
	}

	val := UpdateData{Unset: map[string]interface{}{"b": ""}}
	out2, err := ToUpdateData(val)
	if err != nil {
		t.Fatalf("ToUpdateData nilai gagal: %v", err)
	}
	if _, ok := out2.Unset["b"]; !ok {
		t.Errorf("UpdateData nilai tidak terbawa: %+v", out2)
	}
}
