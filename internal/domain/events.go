package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectedValuesChanged EventType = "SelectedValuesChanged"
	EventSelectedItemsChanged  EventType = "SelectedItemsChanged"
	EventSelectedItemChanged   EventType = "SelectedItemChanged"
	EventMultiChanged          EventType = "MultiChanged"
	EventEntriesLoaded         EventType = "EntriesLoaded"
	EventError                 EventType = "Error"
	EventConfigLoaded          EventType = "ConfigLoaded"
	EventConfigSaved           EventType = "ConfigSaved"
	EventConfigChanged         EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// EntriesLoadedEvent is emitted when the source finished producing entries
type EntriesLoadedEvent struct {
	Source string
	Count  int
}

func (e EntriesLoadedEvent) Type() EventType { return EventEntriesLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Multi    bool
	Fallback string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when the config file changed on disk
// and was parsed successfully
type ConfigChangedEvent struct {
	Multi       bool
	ToggleShift bool
	Fallback    string
	ValueKey    string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
