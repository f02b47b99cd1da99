package model

import "time"

// ================ Config ================
type StorageConfig struct {
	Backend string `envconfig:"STORAGE_BACKEND" default:"file"`
	Dir     string `envconfig:"STORAGE_DIR" default:".storefront"`
}

type StoreConfig struct {
	Name                  string        `envconfig:"STORE_NAME" default:"Soma Scents"`
	ToastDuration         time.Duration `envconfig:"TOAST_DURATION" default:"3s"`
	CheckoutClearDelay    time.Duration `envconfig:"CHECKOUT_CLEAR_DELAY" default:"3s"`
	SearchSuggestionLimit int           `envconfig:"SEARCH_SUGGESTION_LIMIT" default:"5"`
	CollectionPageSize    int           `envconfig:"COLLECTION_PAGE_SIZE" default:"12"`
}

type NotifyConfig struct {
	AdminPhoneNumber string `envconfig:"ADMIN_PHONE_NUMBER" required:"true"`
	// Endpoint points checkout at a remote notification service; empty means in-process.
	Endpoint string        `envconfig:"NOTIFY_ENDPOINT"`
	Timeout  time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
}

type AssistantConfig struct {
	// TranscriptTTL is refreshed on every append; zero keeps transcripts forever.
	TranscriptTTL time.Duration `envconfig:"ASSISTANT_TRANSCRIPT_TTL" default:"24h"`
	HistoryTurns  int           `envconfig:"ASSISTANT_HISTORY_TURNS" default:"20"`
	MaxToolCalls  int           `envconfig:"ASSISTANT_MAX_TOOL_CALLS" default:"10"`
}
