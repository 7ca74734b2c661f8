package ports

// Transport submits one complete raw payload to a printer. The
// implementation lives in the infrastructure layer (spooler or serial
// port); the payload is written as-is, no framing, no retries.
type Transport interface {
	// SendRaw submits the payload as a single job. jobName is only
	// advisory (shown in the spooler queue where applicable).
	SendRaw(jobName string, payload []byte) error

	// Describe returns a short human-readable target description for
	// logs and confirmation dialogs.
	Describe() string
}
