package persistence

import "go.mongodb.org/mongo-driver/v2/bson"

// clampedAdd builds the pipeline expression that adds delta to field without
// letting the result go negative. A missing field reads as zero, so the first
// increment on a fresh document behaves the same as on a seeded one.
func clampedAdd(field string, delta int64) bson.M {
	return bson.M{"$max": bson.A{int64(0), bson.M{"$add": bson.A{
		bson.M{"$ifNull": bson.A{"$" + field, int64(0)}},
		delta,
	}}}}
}
