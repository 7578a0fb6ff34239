package schema

// StoreStatus represents the status of the record store.
type StoreStatus struct {
	Backend        string `json:"backend"`
	Connected      bool   `json:"connected"`
	SchemaVersion  uint   `json:"schema_version"`
	TotalRecords   int    `json:"total_records"`
	TotalActions   int    `json:"total_actions"`
	TableSizeBytes int64  `json:"table_size_bytes"`
}
