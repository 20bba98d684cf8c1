package event

import (
	"reflect"
	"strings"
	"sync"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryOnce  sync.Once
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct, nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	if strings.EqualFold(name, "Tick") {
		return 0, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	if et == 0 {
		return "Tick"
	}
	return typeToName[et]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	InitRegistry()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// InitRegistry populates the registry with all game events, safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("EventMenuConfirm", EventMenuConfirm, nil)
		RegisterType("EventPauseToggle", EventPauseToggle, nil)
		RegisterType("EventQuitRequest", EventQuitRequest, nil)
		RegisterType("EventReturnToMenu", EventReturnToMenu, nil)
		RegisterType("EventGameStart", EventGameStart, nil)
		RegisterType("EventGameOver", EventGameOver, nil)

		RegisterType("EventAsteroidSpawn", EventAsteroidSpawn, &AsteroidSpawnPayload{})
		RegisterType("EventExplosionSpawn", EventExplosionSpawn, &ExplosionSpawnPayload{})
		RegisterType("EventPlayerHit", EventPlayerHit, nil)
		RegisterType("EventPlayerSpawned", EventPlayerSpawned, nil)
		RegisterType("EventScore", EventScore, &ScorePayload{})
		RegisterType("EventLevelUp", EventLevelUp, nil)

		RegisterType("EventSoundRequest", EventSoundRequest, &SoundRequestPayload{})
		RegisterType("EventMuteToggle", EventMuteToggle, nil)
	})
}
