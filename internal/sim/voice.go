package sim

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/sheild/core"
)

// Phrases the demo recognizer knows, with the confidence it reports for a
// clean hearing.
var phraseConfidence = map[string]float64{
	"emergency": 0.95,
	"help me":   0.92,
	"cancel":    0.88,
	"go home":   0.90,
}

// VoiceRecognizer fakes speech input. On each poll it "hears" something with
// the configured probability, garbles it a little, and matches the transcript
// back to the closest phrase.
type VoiceRecognizer struct {
	src         *Source
	probability float64
}

func NewVoiceRecognizer(src *Source, probability float64) *VoiceRecognizer {
	return &VoiceRecognizer{src: src, probability: probability}
}

func (v *VoiceRecognizer) Listen(phrases []string) (core.VoiceHeard, bool) {
	if len(phrases) == 0 || !v.src.Chance(v.probability) {
		return core.VoiceHeard{}, false
	}
	said := phrases[v.src.IntN(len(phrases))]
	transcript := v.garble(said)
	phrase, dist, ok := Match(transcript, phrases)
	if !ok {
		return core.VoiceHeard{}, false
	}
	conf, known := phraseConfidence[phrase]
	if !known {
		conf = 0.85
	}
	conf -= 0.05 * float64(dist)
	return core.VoiceHeard{Phrase: phrase, Transcript: transcript, Confidence: conf}, true
}

// garble drops one rune a third of the time.
func (v *VoiceRecognizer) garble(s string) string {
	r := []rune(s)
	if len(r) < 4 || v.src.IntN(3) != 0 {
		return s
	}
	i := v.src.IntN(len(r))
	return string(r[:i]) + string(r[i+1:])
}

// Match returns the phrase closest to transcript by edit distance. A match
// needs a distance of at most a third of the phrase length.
func Match(transcript string, phrases []string) (string, int, bool) {
	t := strings.ToLower(strings.TrimSpace(transcript))
	if t == "" {
		return "", 0, false
	}
	best, bestDist := "", -1
	for _, p := range phrases {
		d := levenshtein.ComputeDistance(t, strings.ToLower(p))
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	if bestDist < 0 || bestDist > len([]rune(best))/3 {
		return "", 0, false
	}
	return best, bestDist, true
}
