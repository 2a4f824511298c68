package types

// ---- Common service state (retained) ----

type ServiceState struct {
	Level  string `json:"level"`  // "idle", "ready", "stopped"
	Status string `json:"status"` // freeform short code
	TS     int64  `json:"ts_ms"`
}

// Generic error reply
type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
