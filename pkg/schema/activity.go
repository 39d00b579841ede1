package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const ActivityEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "activity_event",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "kind", "type": {
			"type": "enum",
			"name": "activity_kind",
			"symbols": ["product_viewed", "handoff_opened"]
		}},
		{"name": "product_id", "type": "string"},
		{"name": "language", "type": "string"},
		{"name": "quantity", "type": "int"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type ActivityEventV1 struct {
	EventID    string    `avro:"event_id"`
	Kind       string    `avro:"kind"`
	ProductID  string    `avro:"product_id"`
	Language   string    `avro:"language"`
	Quantity   int       `avro:"quantity"`
	OccurredAt time.Time `avro:"occurred_at"`
}

func ActivityEventV1Avro() avro.Schema {
	return avro.MustParse(ActivityEventSchemaTextV1)
}
