package core

import (
	"fmt"
	"log"
)

type FeedbackKind string

const (
	FeedbackLight  FeedbackKind = "light"
	FeedbackMedium FeedbackKind = "medium"
	FeedbackHeavy  FeedbackKind = "heavy"
	FeedbackError  FeedbackKind = "error"
)

// Haptics renders a feedback pulse and returns the glyph to flash.
type Haptics interface {
	Pulse(kind FeedbackKind) (string, error)
}

// VoiceHeard is one simulated recognition result.
type VoiceHeard struct {
	Phrase     string
	Transcript string
	Confidence float64
}

// VoiceRecognizer is polled on every listening tick with the phrases the
// mounted screen understands.
type VoiceRecognizer interface {
	Listen(phrases []string) (VoiceHeard, bool)
}

// VoiceTarget is implemented by screens that accept voice commands. The map
// goes from spoken phrase to command id.
type VoiceTarget interface {
	VoiceCommands() map[string]string
}

// pulse runs a haptic effect, turning a panic into an error. Failures are
// logged and reported; they never interrupt navigation.
func pulse(h Haptics, kind FeedbackKind) (glyph string, err error) {
	if h == nil {
		return "", nil
	}
	defer func() {
		if r := recover(); r != nil {
			glyph, err = "", fmt.Errorf("haptic %s: %v", kind, r)
			log.Printf("sheild: %v", err)
		}
	}()
	g, err := h.Pulse(kind)
	if err != nil {
		err = fmt.Errorf("haptic %s: %w", kind, err)
		log.Printf("sheild: %v", err)
		return "", err
	}
	return g, nil
}

// listen polls a recognizer with the same isolation as pulse.
func listen(r VoiceRecognizer, phrases []string) (heard VoiceHeard, ok bool) {
	if r == nil || len(phrases) == 0 {
		return VoiceHeard{}, false
	}
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("sheild: voice recognition panicked: %v", rec)
			heard, ok = VoiceHeard{}, false
		}
	}()
	return r.Listen(phrases)
}
