package database

import (
	"testing"
)

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single,order:-1"); got != -1 {
		t.Errorf("parseOrder(order:-1) = %d, harusnya -1", got)
	}
	if got := parseOrder("single,order:1"); got != 1 {
		t.Errorf("parseOrder(order:1) = %d, harusnya 1", got)
	}
	if got := parseOrder("single"); got != 1 {
		t.Errorf("parseOrder tanpa order = %d, harusnya default 1", got)
	}
}

func TestParseIndexTag_Single(t *testing.T) {
	result := parseIndexTag("single,order:-1")
	if len(result) != 1 {
		t.Fatalf("jumlah konfigurasi = %d, harusnya 1", len(result))
	}
	if _, ok := result[0]["single"]; !ok {
		t.Error("konfigurasi 'single' tidak terbaca")
	}
	if result[0]["order"] != "-1" {
		t.Errorf("order = %q, harusnya \"-1\"", result[0]["order"])
	}
}

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	result := parseIndexTag("unique,sparse")
	if len(result) != 1 {
		t.Fatalf("jumlah konfigurasi = %d, harusnya 1", len(result))
	}
	if _, ok := result[0]["unique"]; !ok {
		t.Error("konfigurasi 'unique' tidak terbaca")
	}
	if _, ok := result[0]["sparse"]; !ok {
		t.Error("konfigurasi 'sparse' tidak terbaca")
	}
}

func TestParseIndexTag_MultipleEntries(t *testing.T) {
	// Satu field bisa punya beberapa index dipisah ';'
	result := parseIndexTag("text;single,order:1")
	if len(result) != 2 {
		t.Fatalf("jumlah konfigurasi = %d, harusnya 2", len(result))
	}
	if _, ok := result[0]["text"]; !ok {
		t.Error("konfigurasi 'text' tidak terbaca pada entri pertama")
	}
	if _, ok := result[1]["single"]; !ok {
		t.Error("konfigurasi 'single' tidak terbaca pada entri kedua")
	}
}

func TestParseIndexTag_Ttl(t *testing.T) {
	result := parseIndexTag("ttl:3600")
	if result[0]["ttl"] != "3600" {
		t.Errorf("ttl = %q, harusnya \"3600\"", result[0]["ttl"])
	}
}
