// Package models memuat tipe bersama untuk layer repository/base
// (hasil paginasi dan hasil hitung).
package models

// PaginateResult merepresentasikan hasil kueri berpaginasi
type PaginateResult[T any] struct {
	// Halaman saat ini
	Page int64 `json:"page" bson:"page"`
	// Jumlah item per halaman
	Limit int64 `json:"limit" bson:"limit"`
	// Jumlah item pada halaman ini
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Daftar item
	Items []T `json:"items" bson:"items"`
	// Total seluruh item
	Total int64 `json:"total" bson:"total"`
	// Total halaman
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CountResult merepresentasikan hasil penghitungan dokumen
type CountResult struct {
	// Total item
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	// Jumlah item per halaman
	Limit int64 `json:"limit" bson:"limit"`
	// Total halaman
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
