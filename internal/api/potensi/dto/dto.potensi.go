// Package potensidto memuat DTO domain potensi.
package potensidto

import "strings"

// trimEmpty membuang item kosong atau hanya spasi dari sebuah array,
// sekaligus merapikan spasi di tepi tiap item.
func trimEmpty(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
