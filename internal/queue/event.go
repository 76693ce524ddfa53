// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// RecordsQueueName is the durable queue record-change events are sent to.
const RecordsQueueName = "records.changed"

// Action names what happened to a record.
type Action string

const (
    ActionCreated Action = "created"
    ActionUpdated Action = "updated"
    ActionDeleted Action = "deleted"
)

// RecordEvent is published after a record is created, updated or deleted.
// It carries identifiers only, never record contents.
type RecordEvent struct {
    Resource   string    `json:"resource"`
    Action     Action    `json:"action"`
    RecordID   string    `json:"record_id"`
    ProfileID  string    `json:"profile_id,omitempty"`
    OccurredAt time.Time `json:"occurred_at"`
}
