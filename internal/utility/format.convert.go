package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormatBytes mengubah jumlah byte menjadi string yang mudah dibaca (KB, MB, GB)
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// String2ObjectID mengubah string hex menjadi ObjectID.
// String yang tidak valid menghasilkan primitive.NilObjectID.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String mengubah ObjectID menjadi string hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// StringArray2ObjectIDArray mengubah slice string menjadi slice ObjectID
func StringArray2ObjectIDArray(ids []string) []primitive.ObjectID {
	var objectIDs []primitive.ObjectID
	for _, id := range ids {
		objectIDs = append(objectIDs, String2ObjectID(id))
	}
	return objectIDs
}
