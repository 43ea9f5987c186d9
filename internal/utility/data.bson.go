package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// CustomBson membangun dokumen update MongoDB ($set, $push, $unset, $addToSet)
// dari struct biasa. Berguna saat service perlu membuat map bson dari DTO.
type CustomBson struct{}

// BsonWrapper membungkus operator update dasar MongoDB.
// Field yang nil tidak ikut termuat berkat omitempty.
type BsonWrapper struct {
	// Set menghasilkan { $set: {...} }
	Set interface{} `json:"$set,omitempty" bson:"$set,omitempty"`

	// Unset menghapus field tertentu; { $unset: {...} }
	Unset interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`

	// Push menambahkan nilai ke sebuah array; { $push: {...} }
	Push interface{} `json:"$push,omitempty" bson:"$push,omitempty"`

	// AddToSet menambahkan nilai ke array bila belum ada; { $addToSet: {...} }
	AddToSet interface{} `json:"$addToSet,omitempty" bson:"$addToSet,omitempty"`
}

// ToMap mengubah struct menjadi map[string]interface{} lewat marshal bson
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}

// Set membangun kueri update $set dari struct
func (customBson *CustomBson) Set(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Set: data}
	return ToMap(s)
}

// Push membangun kueri update $push dari struct
func (customBson *CustomBson) Push(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Push: data}
	return ToMap(s)
}

// Unset membangun kueri update $unset dari struct
func (customBson *CustomBson) Unset(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Unset: data}
	return ToMap(s)
}

// AddToSet membangun kueri update $addToSet dari struct
func (customBson *CustomBson) AddToSet(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{AddToSet: data}
	return ToMap(s)
}
