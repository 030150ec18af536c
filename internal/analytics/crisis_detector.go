package analytics

import "strings"

// CrisisResponse is returned in place of an assistant reply when a message
// matches the crisis lexicon.
const CrisisResponse = "I notice you may be going through a difficult time. " +
	"If you're having thoughts of suicide or self-harm, please reach out for immediate help:\n\n" +
	"- National Suicide Prevention Lifeline: 1-800-273-8255\n" +
	"- Crisis Text Line: Text HOME to 741741\n" +
	"- Or go to your nearest emergency room or call 911\n\n" +
	"Talking to a trusted friend, family member, or mental health professional can also help.\n\n" +
	"Your life matters, and help is available. " +
	"Would you like me to provide more resources or support options?"

var crisisPhrases = []string{
	"suicide",
	"kill myself",
	"end my life",
	"want to die",
	"don't want to live",
	"self-harm",
	"hurt myself",
	"cutting myself",
	"harming myself",
	"hopeless",
	"worthless",
	"can't go on",
	"no reason to live",
	"everyone would be better off without me",
	"no way out",
}

// CrisisDetector is a conservative keyword gate. It over-triggers on purpose
// and never inspects context around a match.
type CrisisDetector struct {
	phrases []string
}

func NewCrisisDetector() *CrisisDetector {
	return &CrisisDetector{phrases: crisisPhrases}
}

func (d *CrisisDetector) IsCrisis(message string) bool {
	text := apostrophes.Replace(strings.ToLower(message))
	for _, phrase := range d.phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
