package mqtt

import (
	"bytes"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/gridwatch/loadshed/core/ingest"
	"github.com/gridwatch/loadshed/infra/feed"
)

// ScheduleHandler returns the message handler for schedule topics.
// Payloads are JSON feed documents; the area defaults to the last topic
// segment unless the payload names one. Conversion failures are
// recorded by the ingestor, never retried.
func ScheduleHandler(in *ingest.Ingestor) paho.MessageHandler {
	return func(_ paho.Client, msg paho.Message) {
		area := areaFromTopic(msg.Topic())
		doc, err := feed.Decode(bytes.NewReader(msg.Payload()), "json")
		if err != nil {
			in.RecordFailure(area, "decode")
			return
		}
		if doc.Area != "" {
			area = doc.Area
		}
		_ = in.Apply(area, doc.RawSchedule(), doc.Monthly)
	}
}

func areaFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	return parts[len(parts)-1]
}
