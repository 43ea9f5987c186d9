package models

// Token menyimpan JWT per perangkat. Setiap perangkat (hwid) memiliki
// token sendiri sehingga logout satu perangkat tidak mematikan sesi lain.
type Token struct {
	Hwid     string `json:"hwid" bson:"hwid"`
	JwtToken string `json:"jwtToken" bson:"jwtToken"`
}
