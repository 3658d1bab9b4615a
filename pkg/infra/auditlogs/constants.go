package auditlogs

import "time"

const (
	SinkNameLog      = "log"
	SinkNameKafka    = "kafka"
	SinkNamePostgres = "postgres"
	SinkNameMulti    = "multi"
)

const (
	defaultBufferSize = 1024
	defaultWorkers    = 2
	sinkTimeout       = 5 * time.Second
)
